// Package orderdto chứa DTO cho domain đơn hàng.
package orderdto

// OrderItemInput là một dòng hàng trong input tạo đơn
type OrderItemInput struct {
	ProductID string  `json:"productId,omitempty"`
	Title     string  `json:"title" validate:"required"`
	Quantity  int64   `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// OrderCreateInput là input để đặt đơn hàng
type OrderCreateInput struct {
	Email       string                 `json:"email" validate:"required,email"`
	Name        string                 `json:"name,omitempty"`
	Phone       string                 `json:"phone,omitempty"`
	Address     string                 `json:"address,omitempty"`
	Items       []OrderItemInput       `json:"items,omitempty"`
	TotalAmount float64                `json:"totalAmount,omitempty"`
	Currency    string                 `json:"currency,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"` // Payload tự do từ storefront
}

// OrderUpdateInput tồn tại để thỏa generic BaseHandler; đơn hàng là bất biến
// nên không có route update nào được đăng ký.
type OrderUpdateInput struct{}

// SendOrderEmailInput là input của endpoint gửi email xác nhận đơn hàng
type SendOrderEmailInput struct {
	OrderID string `json:"orderId" validate:"required"`
}
