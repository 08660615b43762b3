// Package aisvc chứa client gọi Gemini generateContent.
package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ayira_commerce/config"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/logger"
)

// GeminiClient gọi Gemini API qua HTTPS. API key chỉ nằm trong header
// gửi đi, không bao giờ xuất hiện trong response hay log.
type GeminiClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewGeminiClient tạo GeminiClient từ cấu hình.
func NewGeminiClient(cfg *config.Configuration) *GeminiClient {
	return &GeminiClient{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.GeminiAPIURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// geminiRequest là payload của generateContent
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse là phần response cần đọc từ generateContent
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent gửi prompt tới Gemini và trích text của candidate đầu tiên.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	log := logger.GetAppLogger()

	if g.apiKey == "" {
		return "", common.NewError(
			common.ErrCodeExternalService,
			"Gemini API chưa được cấu hình",
			common.StatusBadGateway,
			nil,
		)
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo payload Gemini", common.StatusInternalServerError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo request Gemini", common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Gọi Gemini API thất bại")
		return "", common.NewError(
			common.ErrCodeExternalService,
			"Không thể kết nối tới dịch vụ AI",
			common.StatusBadGateway,
			nil,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", common.NewError(common.ErrCodeExternalService, "Không đọc được response từ dịch vụ AI", common.StatusBadGateway, nil)
	}

	if resp.StatusCode != http.StatusOK {
		// Không đưa body thô của upstream vào response để tránh lộ thông tin
		log.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Gemini API trả về lỗi")
		return "", common.NewError(
			common.ErrCodeExternalService,
			fmt.Sprintf("Dịch vụ AI trả về lỗi (HTTP %d)", resp.StatusCode),
			common.StatusBadGateway,
			nil,
		)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", common.NewError(common.ErrCodeExternalService, "Response từ dịch vụ AI không đúng định dạng", common.StatusBadGateway, nil)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", common.NewError(common.ErrCodeExternalService, "Dịch vụ AI không trả về nội dung", common.StatusBadGateway, nil)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
