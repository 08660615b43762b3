package ordermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem - Một dòng hàng trong đơn.
type OrderItem struct {
	ProductID string  `json:"productId,omitempty" bson:"productId,omitempty"` // Tham chiếu mềm tới sản phẩm
	Title     string  `json:"title" bson:"title"`
	Quantity  int64   `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty"`
}

// Order - Đơn hàng đặt từ storefront. Đơn đã ghi nhận là bất biến:
// không có endpoint update/delete.
type Order struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string                 `json:"email" bson:"email" index:"single"` // Email khách hàng
	Name        string                 `json:"name,omitempty" bson:"name,omitempty"`
	Phone       string                 `json:"phone,omitempty" bson:"phone,omitempty"`
	Address     string                 `json:"address,omitempty" bson:"address,omitempty"`
	Items       []OrderItem            `json:"items,omitempty" bson:"items,omitempty"`
	TotalAmount float64                `json:"totalAmount,omitempty" bson:"totalAmount,omitempty"`
	Currency    string                 `json:"currency,omitempty" bson:"currency,omitempty"`
	Status      string                 `json:"status" bson:"status" default:"pending" index:"single"`
	Details     map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"` // Payload tự do từ storefront
	CreatedAt   int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                  `json:"updatedAt" bson:"updatedAt"`
}
