package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category - Danh mục sản phẩm phẳng (không phân cấp).
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Value     string             `json:"value" bson:"value" index:"single"` // Tên danh mục
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Banner - Banner hiển thị trên storefront, ảnh là bắt buộc.
type Banner struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	Link      string             `json:"link,omitempty" bson:"link,omitempty"` // URL đích khi click banner
	Image     string             `json:"image" bson:"image"`                   // /uploads/banners/<filename>
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// SizeChart - Bảng size dạng ảnh, gắn với danh mục (tùy chọn).
type SizeChart struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Image     string             `json:"image" bson:"image"` // /uploads/size_charts/<filename>
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
