// Package router đăng ký các route thuộc domain catalog: sản phẩm, danh mục,
// banner, bảng size, đánh giá và thuộc tính sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "ayira_commerce/internal/api/catalog/handler"
	apirouter "ayira_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1 và các path public cũ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	bannerHandler, err := cataloghdl.NewBannerHandler()
	if err != nil {
		return fmt.Errorf("create banner handler: %w", err)
	}
	sizeChartHandler, err := cataloghdl.NewSizeChartHandler()
	if err != nil {
		return fmt.Errorf("create size chart handler: %w", err)
	}
	reviewHandler, err := cataloghdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("create review handler: %w", err)
	}
	attributeHandler, err := cataloghdl.NewAttributeHandler()
	if err != nil {
		return fmt.Errorf("create attribute handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/banners", bannerHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/size-charts", sizeChartHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/reviews", reviewHandler, apirouter.ReadWriteConfig)

	// Các path public giữ nguyên từ storefront cũ
	app := r.App()
	app.Post("/post-products", productHandler.HandleCreate)
	app.Patch("/update-product/:id", productHandler.HandleUpdate)
	app.Delete("/products/:id", productHandler.DeleteById)
	app.Get("/find-products", productHandler.Find)
	app.Get("/find-filterd-products", productHandler.HandleFindFiltered)

	app.Post("/categories", categoryHandler.InsertOne)
	app.Get("/categories", categoryHandler.Find)
	app.Delete("/categories/:id", categoryHandler.DeleteById)

	app.Post("/banners", bannerHandler.HandleCreate)
	app.Get("/banners", bannerHandler.Find)
	app.Delete("/banners/:id", bannerHandler.DeleteById)

	app.Post("/size-charts", sizeChartHandler.HandleCreate)
	app.Get("/size-charts", sizeChartHandler.Find)
	app.Delete("/size-charts/:id", sizeChartHandler.DeleteById)

	app.Post("/post-productReview", reviewHandler.InsertOne)
	app.Get("/find-productReview", reviewHandler.HandleFindAll)

	app.Post("/post-productAttribute", attributeHandler.HandleAdd)
	app.Get("/find-productAttributes", attributeHandler.HandleFindAll)
	app.Delete("/delete-productAttribute/:type/:id", attributeHandler.HandleRemove)

	return nil
}
