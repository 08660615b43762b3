// Package router đăng ký các route xuất PDF.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	exporthdl "ayira_commerce/internal/api/export/handler"
	apirouter "ayira_commerce/internal/api/router"
)

// Register đăng ký route tải PDF, giữ nguyên path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	exportHandler, err := exporthdl.NewExportHandler()
	if err != nil {
		return fmt.Errorf("create export handler: %w", err)
	}

	app := r.App()
	app.Get("/download-pdf/:collectionName", exportHandler.HandleDownloadCollection)
	app.Get("/download-product-sheet/:id", exportHandler.HandleDownloadProductSheet)
	return nil
}
