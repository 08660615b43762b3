// Package catalogdto chứa DTO cho domain catalog (sản phẩm, danh mục, banner,
// bảng size, đánh giá, thuộc tính).
package catalogdto

// ProductCreateInput là input dạng JSON để tạo sản phẩm qua CRUD chung.
// Endpoint multipart /post-products parse form trực tiếp trong handler.
type ProductCreateInput struct {
	Title           string  `json:"title" validate:"required"`
	ProductCode     string  `json:"productCode,omitempty"`
	GsmCode         string  `json:"gsmCode,omitempty"`
	Category        string  `json:"category,omitempty"`
	SubCategory     string  `json:"subCategory,omitempty"`
	Size            string  `json:"size,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	Fit             string  `json:"fit,omitempty"`
	Sustainability  string  `json:"sustainability,omitempty"`
	Price           float64 `json:"price" validate:"required"`
	MetaTitle       string  `json:"metaTitle,omitempty"`
	MetaDescription string  `json:"metaDescription,omitempty"`
	Email           string  `json:"email,omitempty"`
}

// ProductUpdateInput là input JSON để cập nhật một phần sản phẩm qua CRUD chung
type ProductUpdateInput struct {
	Title           *string  `json:"title,omitempty"`
	ProductCode     *string  `json:"productCode,omitempty"`
	GsmCode         *string  `json:"gsmCode,omitempty"`
	Category        *string  `json:"category,omitempty"`
	SubCategory     *string  `json:"subCategory,omitempty"`
	Size            *string  `json:"size,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	Fit             *string  `json:"fit,omitempty"`
	Sustainability  *string  `json:"sustainability,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	MetaTitle       *string  `json:"metaTitle,omitempty"`
	MetaDescription *string  `json:"metaDescription,omitempty"`
}
