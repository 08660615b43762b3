package catalogdto

// AttributeAddInput là input để thêm một giá trị thuộc tính.
// Value là string (vd. "XL") hoặc object màu {colourName, colourCode}.
type AttributeAddInput struct {
	Key   string      `json:"key" validate:"required"`
	Value interface{} `json:"value" validate:"required"`
}
