// Package router đăng ký các route thuộc domain AI.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "ayira_commerce/internal/api/ai/handler"
	apirouter "ayira_commerce/internal/api/router"
)

// Register đăng ký route Gemini proxy, giữ nguyên path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	geminiHandler, err := aihdl.NewGeminiHandler()
	if err != nil {
		return fmt.Errorf("create gemini handler: %w", err)
	}

	r.App().Post("/api/gemini", geminiHandler.HandleChat)
	return nil
}
