// Package wishlisthdl chứa HTTP handler cho domain wishlist.
package wishlisthdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	wishlistdto "ayira_commerce/internal/api/wishlist/dto"
	wishlistmodels "ayira_commerce/internal/api/wishlist/models"
	wishlistsvc "ayira_commerce/internal/api/wishlist/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// WishlistHandler xử lý các request quản lý wishlist
type WishlistHandler struct {
	*basehdl.BaseHandler[wishlistmodels.WishlistItem, wishlistdto.WishlistAddInput, wishlistdto.WishlistUpdateInput]
	wishlistService *wishlistsvc.WishlistService
}

// NewWishlistHandler tạo instance mới của WishlistHandler
func NewWishlistHandler() (*WishlistHandler, error) {
	wishlistService, err := wishlistsvc.NewWishlistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist service: %v", err)
	}
	return &WishlistHandler{
		BaseHandler:     basehdl.NewBaseHandler[wishlistmodels.WishlistItem, wishlistdto.WishlistAddInput, wishlistdto.WishlistUpdateInput](wishlistService),
		wishlistService: wishlistService,
	}, nil
}

// HandleFind liệt kê wishlist, lọc theo email từ path param hoặc query
// (GET /find-wishlist và GET /find-wishlist/:email)
func (h *WishlistHandler) HandleFind(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		email := c.Params("email")
		if email == "" {
			email = c.Query("email")
		}
		if email != "" {
			filter["email"] = email
		}
		items, err := h.wishlistService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, items, err)
		return nil
	})
}
