package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductReview - Đánh giá sản phẩm từ khách, tham chiếu mềm qua productId.
type ProductReview struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId" index:"single"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Rating    int64              `json:"rating" bson:"rating"` // 1..5
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
