package usermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address - Địa chỉ giao hàng của người dùng, tham chiếu mềm qua email.
type Address struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email" index:"single"` // Email chủ địa chỉ
	Name       string             `json:"name" bson:"name"`                  // Tên người nhận
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Street     string             `json:"street,omitempty" bson:"street,omitempty"`
	City       string             `json:"city,omitempty" bson:"city,omitempty"`
	State      string             `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string             `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string             `json:"country,omitempty" bson:"country,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
