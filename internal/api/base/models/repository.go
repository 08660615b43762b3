// Package models chứa các kiểu kết quả dùng chung của tầng service MongoDB.
package models

// PaginateResult là kết quả trả về của các endpoint danh sách có phân trang.
// Tên field JSON (currentPage, totalPages) giữ nguyên theo contract
// mà storefront đang parse.
type PaginateResult[T any] struct {
	// Trang được yêu cầu (bắt đầu từ 1)
	Page int64 `json:"currentPage" bson:"currentPage"`
	// Số mục tối đa mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số mục thực tế trong trang này
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Dữ liệu của trang
	Items []T `json:"items" bson:"items"`
	// Tổng số mục khớp filter
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang, làm tròn lên từ Total/Limit
	TotalPage int64 `json:"totalPages" bson:"totalPages"`
}
