// Package advice asks a generative model for a short financial opinion on a
// loan request. It never fails: every problem ends in a fixed fallback text.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GlebRadaev/ndvmoney/internal/config"
	"github.com/GlebRadaev/ndvmoney/pkg/clients"
)

const (
	maxRetries    = 2
	retryInterval = time.Second * 1
	temperature   = 0.5

	MsgMaintenance = "Hệ thống đang bảo trì dịch vụ tư vấn tài chính."
	MsgNoAdvice    = "Hiện tại chuyên gia không có lời khuyên nào cụ thể."
	MsgUnavailable = "Dịch vụ tư vấn AI tạm thời không khả dụng. Vui lòng thử lại sau."

	systemInstruction = "Bạn là chuyên gia tài chính NDV Money. Trả lời chuyên nghiệp, thẳng thắn, tập trung vào rủi ro và giải pháp."
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type Request struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type Response struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r Response) Text() string {
	var sb strings.Builder
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(sb.String())
}

type Service struct {
	url           string
	apiKey        string
	client        clients.HTTPClientI
	retries       int
	retryInterval time.Duration
	printer       *message.Printer
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:           fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(cfg.AdviceAddress, "/"), cfg.AdviceModel),
		apiKey:        cfg.AdviceAPIKey,
		client:        client,
		retries:       maxRetries,
		retryInterval: retryInterval,
		printer:       message.NewPrinter(language.Vietnamese),
	}
}

// Prompt builds the question sent to the model. income may be nil.
func (s *Service) Prompt(amount int64, termMonths int, income *int64) string {
	incomeText := "không xác định"
	if income != nil && *income > 0 {
		incomeText = s.printer.Sprintf("%d", *income)
	}
	return s.printer.Sprintf(
		"Tôi muốn vay %d VNĐ trong vòng %d tháng. Thu nhập của tôi là %s VNĐ. Hãy phân tích khả năng trả nợ và đưa ra lời khuyên tài chính cực kỳ ngắn gọn (dưới 50 từ) bằng tiếng Việt.",
		amount, termMonths, incomeText,
	)
}

func (s *Service) Advise(ctx context.Context, amount int64, termMonths int, income *int64) string {
	if s.apiKey == "" {
		return MsgMaintenance
	}

	body, err := json.Marshal(Request{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: s.Prompt(amount, termMonths, income)}}}},
		GenerationConfig:  generationConfig{Temperature: temperature},
	})
	if err != nil {
		zap.L().Error("failed to encode advice request", zap.Error(err))
		return MsgUnavailable
	}

	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				zap.L().Warn("advice request canceled", zap.Error(ctx.Err()))
				return MsgUnavailable
			case <-time.After(s.retryInterval):
			}
		}

		text, err := s.generate(body)
		if err == nil {
			if text == "" {
				return MsgNoAdvice
			}
			return text
		}
		zap.L().Warn("advice request failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	zap.L().Error("advice service unavailable", zap.Int("retries", s.retries))
	return MsgUnavailable
}

func (s *Service) generate(body []byte) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("x-goog-api-key", s.apiKey)

	statusCode, respBody, _, err := s.client.Post(s.url, headers, body)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", statusCode)
	}

	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	return response.Text(), nil
}
