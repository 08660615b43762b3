package cataloghdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	catalogdto "ayira_commerce/internal/api/catalog/dto"
	catalogsvc "ayira_commerce/internal/api/catalog/service"
	"ayira_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// AttributeHandler xử lý các request quản lý thuộc tính sản phẩm.
// Không embed BaseHandler: document singleton không đi qua CRUD chung.
type AttributeHandler struct {
	attributeService *catalogsvc.AttributeService
}

// NewAttributeHandler tạo instance mới của AttributeHandler
func NewAttributeHandler() (*AttributeHandler, error) {
	attributeService, err := catalogsvc.NewAttributeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create attribute service: %v", err)
	}
	return &AttributeHandler{
		attributeService: attributeService,
	}, nil
}

// HandleAdd thêm một giá trị thuộc tính (POST /post-productAttribute).
// Key và value đều bắt buộc; giá trị trùng trong cùng nhóm trả về 409.
func (h *AttributeHandler) HandleAdd(c fiber.Ctx) error {
	var input catalogdto.AttributeAddInput
	if err := c.Bind().Body(&input); err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu không đúng định dạng JSON: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if input.Key == "" || input.Value == nil {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Key và value không được để trống",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	doc, err := h.attributeService.Add(c.Context(), input.Key, input.Value)
	basehdl.WriteResponse(c, doc, err)
	return nil
}

// HandleFindAll trả về document thuộc tính singleton (GET /find-productAttributes).
// Giữ dạng mảng như storefront cũ: rỗng khi chưa có thuộc tính nào.
func (h *AttributeHandler) HandleFindAll(c fiber.Ctx) error {
	docs, err := h.attributeService.Find(c.Context(), bson.M{}, nil)
	basehdl.WriteResponse(c, docs, err)
	return nil
}

// HandleRemove gỡ một giá trị thuộc tính theo nhóm và id
// (DELETE /delete-productAttribute/:type/:id)
func (h *AttributeHandler) HandleRemove(c fiber.Ctx) error {
	attrType := c.Params("type")
	id := c.Params("id")
	if attrType == "" || id == "" {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Type và id không được để trống",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	doc, err := h.attributeService.Remove(c.Context(), attrType, id)
	basehdl.WriteResponse(c, doc, err)
	return nil
}
