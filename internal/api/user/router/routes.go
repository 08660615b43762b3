// Package router đăng ký các route thuộc domain người dùng: users, addresses.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "ayira_commerce/internal/api/router"
	userhdl "ayira_commerce/internal/api/user/handler"
)

// Register đăng ký tất cả route người dùng lên v1 và các path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := userhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}
	addressHandler, err := userhdl.NewAddressHandler()
	if err != nil {
		return fmt.Errorf("create address handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/addresses", addressHandler, apirouter.ReadWriteConfig)

	// Các path public giữ nguyên từ storefront cũ
	app := r.App()
	app.Post("/api/post-users", userHandler.HandleRegister)
	app.Get("/api/find-all-users", userHandler.HandleFindAll)
	app.Get("/api/users/:id", userHandler.FindOneById)
	app.Patch("/api/users/:id", userHandler.UpdateById)
	app.Patch("/api/users/:id/role", userHandler.HandleSetRole)
	app.Delete("/api/users/:id", userHandler.DeleteById)

	app.Post("/address", addressHandler.InsertOne)
	app.Get("/address", addressHandler.HandleFindByEmail)

	return nil
}
