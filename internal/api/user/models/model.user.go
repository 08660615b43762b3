package usermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User - Người dùng đã đăng ký qua storefront.
// Email là khóa duy nhất (unique index), role chỉ được lưu trữ, không kiểm tra quyền.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`                                    // Tên hiển thị
	Email       string             `json:"email" bson:"email" index:"unique"`                   // Email đăng ký (unique)
	Photo       string             `json:"photo,omitempty" bson:"photo,omitempty"`              // URL ảnh đại diện
	Role        string             `json:"role" bson:"role" default:"user" index:"single"`      // Vai trò (mặc định "user")
	Permissions []string           `json:"permissions,omitempty" bson:"permissions,omitempty"`  // Danh sách quyền (chỉ lưu trữ)
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
