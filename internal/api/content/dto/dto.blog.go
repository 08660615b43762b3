// Package contentdto chứa DTO cho domain nội dung (blog, bình luận).
package contentdto

// BlogCreateInput là input JSON cho CRUD chung; endpoint multipart /blogs
// parse form trực tiếp trong handler.
type BlogCreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AuthorName  string   `json:"authorName,omitempty"`
	AuthorTitle string   `json:"authorTitle,omitempty"`
}

// BlogUpdateInput là input để cập nhật một phần bài blog
type BlogUpdateInput struct {
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	AuthorName  *string   `json:"authorName,omitempty"`
	AuthorTitle *string   `json:"authorTitle,omitempty"`
}

// CommentCreateInput là input để đăng bình luận
type CommentCreateInput struct {
	BlogID  string `json:"blogId" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content" validate:"required"`
}

// CommentUpdateInput là input để sửa bình luận
type CommentUpdateInput struct {
	Content *string `json:"content,omitempty"`
}
