// Package router đăng ký các route thuộc domain đơn hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "ayira_commerce/internal/api/order/handler"
	apirouter "ayira_commerce/internal/api/router"
)

// Register đăng ký tất cả route đơn hàng lên v1 và các path public cũ.
// Đơn hàng là bất biến nên chỉ có cấu hình append-only.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, apirouter.AppendOnlyConfig)

	// Các path public giữ nguyên từ storefront cũ
	app := r.App()
	app.Post("/orders", orderHandler.HandleCreate)
	app.Get("/orders", orderHandler.HandleFindAll)
	app.Post("/send-order-emails", orderHandler.HandleSendOrderEmail)

	return nil
}
