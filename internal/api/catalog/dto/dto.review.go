package catalogdto

// ReviewCreateInput là input để đăng đánh giá sản phẩm
type ReviewCreateInput struct {
	ProductID string `json:"productId" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Name      string `json:"name,omitempty"`
	Rating    int64  `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewUpdateInput là input để sửa đánh giá sản phẩm
type ReviewUpdateInput struct {
	Rating  *int64  `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}
