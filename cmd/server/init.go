package main

import (
	"ayira_commerce/config"
	"ayira_commerce/internal/database"
	"ayira_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database.
// Các tên lệch chuẩn (All-Users, all-products, Product-Attributes, ...) giữ
// nguyên theo dữ liệu đang chạy của storefront, không đổi để tránh mất dữ liệu.
func initColNames() {
	global.ColNames.Orders = "orders"
	global.ColNames.Users = "All-Users"
	global.ColNames.Addresses = "address"
	global.ColNames.Blogs = "blogs"
	global.ColNames.Comments = "comments"
	global.ColNames.ProductAttributes = "Product-Attributes"
	global.ColNames.ProductReviews = "Product-Reviews"
	global.ColNames.Products = "all-products"
	global.ColNames.Categories = "categories"
	global.ColNames.Banners = "banners"
	global.ColNames.SizeCharts = "size-charts"
	global.ColNames.Wishlists = "wishlists"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection
}
