package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttributeEntry - Một giá trị thuộc tính, id là timestamp dạng chuỗi.
// Value là string (vd. size "XL") hoặc object màu {colourName, colourCode}.
type AttributeEntry struct {
	ID    string      `json:"id" bson:"id"`
	Value interface{} `json:"value" bson:"value"`
}

// ProductAttributeDoc - Document singleton chứa toàn bộ thuộc tính sản phẩm.
// Collection Product-Attributes chỉ giữ một document duy nhất, tạo lần đầu
// bằng upsert với filter rỗng; mỗi key trong ProductAttributes là một nhóm
// thuộc tính (colors, sizes, fits, ...).
type ProductAttributeDoc struct {
	ID                primitive.ObjectID          `json:"id,omitempty" bson:"_id,omitempty"`
	ProductAttributes map[string][]AttributeEntry `json:"productAttributes" bson:"productAttributes"`
	CreatedAt         int64                       `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64                       `json:"updatedAt" bson:"updatedAt"`
}
