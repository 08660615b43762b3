// Package router đăng ký các route thuộc domain nội dung: blogs, comments.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "ayira_commerce/internal/api/content/handler"
	apirouter "ayira_commerce/internal/api/router"
)

// Register đăng ký tất cả route nội dung lên v1 và các path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	blogHandler, err := contenthdl.NewBlogHandler()
	if err != nil {
		return fmt.Errorf("create blog handler: %w", err)
	}
	commentHandler, err := contenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("create comment handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/blogs", blogHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/comments", commentHandler, apirouter.ReadWriteConfig)

	// Các path public giữ nguyên từ storefront cũ
	app := r.App()
	app.Post("/blogs", blogHandler.HandleCreate)
	app.Get("/blogs", blogHandler.HandleFindAll)
	app.Get("/blogs/:id", blogHandler.FindOneById)
	app.Put("/blogs/:id", blogHandler.HandleUpdate)
	app.Delete("/blogs/:id", blogHandler.DeleteById)

	app.Post("/comments", commentHandler.InsertOne)
	app.Get("/comments", commentHandler.HandleFindAll)

	return nil
}
