// Package userdto chứa DTO cho domain người dùng.
package userdto

// UserCreateInput là input để đăng ký người dùng
type UserCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Photo       string   `json:"photo,omitempty"`
	Role        string   `json:"role,omitempty"`        // Bỏ trống sẽ nhận mặc định "user"
	Permissions []string `json:"permissions,omitempty"` // Chỉ lưu trữ, không kiểm tra quyền
}

// UserUpdateInput là input để cập nhật một phần thông tin người dùng
type UserUpdateInput struct {
	Name        *string   `json:"name,omitempty"`
	Photo       *string   `json:"photo,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

// UserSetRoleInput là input để đổi vai trò người dùng
type UserSetRoleInput struct {
	Role string `json:"role" validate:"required"`
}
