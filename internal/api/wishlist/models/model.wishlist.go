package wishlistmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem - Một mục yêu thích của khách, tham chiếu mềm qua email và productId.
type WishlistItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" index:"single"`
	ProductID string             `json:"productId" bson:"productId" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
