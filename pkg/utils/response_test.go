package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		payload      any
		expectedBody string
	}{
		{name: "Object", status: http.StatusOK, payload: map[string]int{"count": 2}, expectedBody: `{"count":2}`},
		{name: "No payload", status: http.StatusAccepted, payload: nil, expectedBody: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			RespondWithJSON(rec, tt.status, tt.payload)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithError(rec, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request"}`, rec.Body.String())
}
