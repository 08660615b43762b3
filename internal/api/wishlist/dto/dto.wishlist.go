// Package wishlistdto chứa DTO cho domain wishlist.
package wishlistdto

// WishlistAddInput là input để thêm sản phẩm vào wishlist
type WishlistAddInput struct {
	Email     string `json:"email" validate:"required,email"`
	ProductID string `json:"productId" validate:"required"`
}

// WishlistUpdateInput tồn tại để thỏa generic BaseHandler; wishlist chỉ
// thêm và xóa, không có route update nào được đăng ký.
type WishlistUpdateInput struct{}
