package catalogdto

// CategoryCreateInput là input để tạo danh mục
type CategoryCreateInput struct {
	Value string `json:"value" validate:"required"`
}

// CategoryUpdateInput là input để đổi tên danh mục
type CategoryUpdateInput struct {
	Value *string `json:"value,omitempty"`
}

// BannerCreateInput là input JSON cho CRUD chung; endpoint multipart /banners
// parse form trực tiếp trong handler.
type BannerCreateInput struct {
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
	Image string `json:"image" validate:"required"`
}

// BannerUpdateInput là input để cập nhật banner
type BannerUpdateInput struct {
	Title *string `json:"title,omitempty"`
	Link  *string `json:"link,omitempty"`
	Image *string `json:"image,omitempty"`
}

// SizeChartCreateInput là input JSON cho CRUD chung; endpoint multipart
// /size-charts parse form trực tiếp trong handler.
type SizeChartCreateInput struct {
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image" validate:"required"`
}

// SizeChartUpdateInput là input để cập nhật bảng size
type SizeChartUpdateInput struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Image    *string `json:"image,omitempty"`
}
