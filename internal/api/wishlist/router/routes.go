// Package router đăng ký các route thuộc domain wishlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "ayira_commerce/internal/api/router"
	wishlisthdl "ayira_commerce/internal/api/wishlist/handler"
)

// Register đăng ký tất cả route wishlist lên v1 và các path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	wishlistHandler, err := wishlisthdl.NewWishlistHandler()
	if err != nil {
		return fmt.Errorf("create wishlist handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/wishlists", wishlistHandler, apirouter.ReadWriteConfig)

	// Các path public giữ nguyên từ storefront cũ
	app := r.App()
	app.Post("/add-wishlist", wishlistHandler.InsertOne)
	app.Get("/find-wishlist", wishlistHandler.HandleFind)
	app.Get("/find-wishlist/:email", wishlistHandler.HandleFind)
	app.Delete("/wishlist/:id", wishlistHandler.DeleteById)

	return nil
}
