package global

import (
	"ayira_commerce/config"
	"ayira_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ayira_CollectionName chứa tên các collection trong MongoDB
type Ayira_CollectionName struct {
	Orders            string // Tên collection cho đơn hàng
	Users             string // Tên collection cho người dùng
	Addresses         string // Tên collection cho địa chỉ giao hàng
	Blogs             string // Tên collection cho bài viết blog
	Comments          string // Tên collection cho bình luận blog
	ProductAttributes string // Tên collection cho thuộc tính sản phẩm (singleton document)
	ProductReviews    string // Tên collection cho đánh giá sản phẩm
	Products          string // Tên collection cho sản phẩm
	Categories        string // Tên collection cho danh mục
	Banners           string // Tên collection cho banner
	SizeCharts        string // Tên collection cho bảng size
	Wishlists         string // Tên collection cho wishlist
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var ColNames Ayira_CollectionName = *new(Ayira_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
