package clients

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key", r.Header.Get("X-Goog-Api-Key"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"q":1}`, string(body))
		w.Header().Set("X-Trace", "abc")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("X-Goog-Api-Key", "key")
	status, body, respHeaders, err := NewHTTPClient().Post(server.URL, headers, []byte(`{"q":1}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "abc", respHeaders.Get("X-Trace"))
}

func TestHTTPClient_PostUnreachable(t *testing.T) {
	_, _, _, err := NewHTTPClient().Post("http://127.0.0.1:1", nil, nil)

	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post("http://x", gomock.Nil(), []byte("b")).Return(http.StatusOK, []byte("r"), nil, nil)

	client := NewHTTPClient()
	client.SetClient(mock)
	status, body, _, err := client.Post("http://x", nil, []byte("b"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []byte("r"), body)
}
