package contentmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog - Bài viết blog của storefront. Các field ảnh lưu URL path
// dạng /uploads/blogs/<filename>.
type Blog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" index:"text"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Content     string             `json:"content,omitempty" bson:"content,omitempty"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	MainImage   string             `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
	ExtraImages []string           `json:"extraImages,omitempty" bson:"extraImages,omitempty"`
	AuthorName  string             `json:"authorName,omitempty" bson:"authorName,omitempty"`
	AuthorTitle string             `json:"authorTitle,omitempty" bson:"authorTitle,omitempty"`
	AuthorImage string             `json:"authorImage,omitempty" bson:"authorImage,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Comment - Bình luận dưới một bài blog, tham chiếu mềm qua blogId.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BlogID    string             `json:"blogId" bson:"blogId" index:"single"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
