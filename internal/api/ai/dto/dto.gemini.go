// Package aidto chứa DTO cho domain AI (Gemini proxy).
package aidto

// GeminiChatInput là input của endpoint chat completion
type GeminiChatInput struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GeminiChatOutput là kết quả trả về cho client
type GeminiChatOutput struct {
	Text string `json:"text"` // Text trích từ candidate đầu tiên
}
