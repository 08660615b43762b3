// Package aihdl chứa HTTP handler cho domain AI (Gemini proxy).
package aihdl

import (
	"fmt"

	aidto "ayira_commerce/internal/api/ai/dto"
	aisvc "ayira_commerce/internal/api/ai/service"
	basehdl "ayira_commerce/internal/api/base/handler"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
)

// GeminiHandler xử lý request chat completion
type GeminiHandler struct {
	client *aisvc.GeminiClient
}

// NewGeminiHandler tạo instance mới của GeminiHandler
func NewGeminiHandler() (*GeminiHandler, error) {
	return &GeminiHandler{
		client: aisvc.NewGeminiClient(global.ServerConfig),
	}, nil
}

// HandleChat chuyển prompt tới Gemini và trả về text sinh ra (POST /api/gemini)
func (h *GeminiHandler) HandleChat(c fiber.Ctx) error {
	var input aidto.GeminiChatInput
	if err := c.Bind().Body(&input); err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu không đúng định dạng JSON: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if input.Prompt == "" {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Prompt không được để trống",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	text, err := h.client.GenerateContent(c.Context(), input.Prompt)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	basehdl.WriteResponse(c, aidto.GeminiChatOutput{Text: text}, nil)
	return nil
}
