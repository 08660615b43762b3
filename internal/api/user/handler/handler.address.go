package userhdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	userdto "ayira_commerce/internal/api/user/dto"
	usermodels "ayira_commerce/internal/api/user/models"
	usersvc "ayira_commerce/internal/api/user/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// AddressHandler xử lý các request quản lý địa chỉ giao hàng
type AddressHandler struct {
	*basehdl.BaseHandler[usermodels.Address, userdto.AddressCreateInput, userdto.AddressUpdateInput]
	addressService *usersvc.AddressService
}

// NewAddressHandler tạo instance mới của AddressHandler
func NewAddressHandler() (*AddressHandler, error) {
	addressService, err := usersvc.NewAddressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create address service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[usermodels.Address, userdto.AddressCreateInput, userdto.AddressUpdateInput](addressService)
	return &AddressHandler{
		BaseHandler:    baseHandler,
		addressService: addressService,
	}, nil
}

// HandleFindByEmail trả về địa chỉ của một email, hoặc toàn bộ nếu không truyền email (GET /address)
func (h *AddressHandler) HandleFindByEmail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if email := c.Query("email"); email != "" {
			filter["email"] = email
		}
		addresses, err := h.addressService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, addresses, err)
		return nil
	})
}
