// Package catalogsvc - Test so khớp trùng lặp giá trị thuộc tính sản phẩm.
package catalogsvc

import (
	"testing"

	catalogmodels "ayira_commerce/internal/api/catalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAttributeText_String(t *testing.T) {
	text, ok := AttributeText("Cotton")
	if !ok || text != "Cotton" {
		t.Errorf("string phải trả về chính nó, nhận (%q, %v)", text, ok)
	}
}

func TestAttributeText_ColourMap(t *testing.T) {
	text, ok := AttributeText(map[string]interface{}{"colourName": "Đỏ", "colourCode": "#f00"})
	if !ok || text != "Đỏ" {
		t.Errorf("object màu phải trả về colourName, nhận (%q, %v)", text, ok)
	}
}

func TestAttributeText_PrimitiveDecodedForms(t *testing.T) {
	// BSON decode interface{} thành primitive.M hoặc primitive.D tùy cấu hình
	text, ok := AttributeText(primitive.M{"colourName": "Xanh"})
	if !ok || text != "Xanh" {
		t.Errorf("primitive.M: nhận (%q, %v)", text, ok)
	}

	text, ok = AttributeText(primitive.D{{Key: "colourCode", Value: "#00f"}, {Key: "colourName", Value: "Xanh"}})
	if !ok || text != "Xanh" {
		t.Errorf("primitive.D: nhận (%q, %v)", text, ok)
	}
}

func TestAttributeText_Unsupported(t *testing.T) {
	if _, ok := AttributeText(42); ok {
		t.Error("giá trị số không có dạng text để so khớp")
	}
	if _, ok := AttributeText(map[string]interface{}{"name": "x"}); ok {
		t.Error("object thiếu colourName không có dạng text để so khớp")
	}
}

func TestIsDuplicateEntry_CaseInsensitive(t *testing.T) {
	entries := []catalogmodels.AttributeEntry{
		{ID: "1", Value: "Cotton"},
		{ID: "2", Value: primitive.M{"colourName": "Đỏ"}},
	}

	if !IsDuplicateEntry(entries, "COTTON") {
		t.Error("so khớp phải không phân biệt hoa thường")
	}
	if !IsDuplicateEntry(entries, map[string]interface{}{"colourName": "Đỏ"}) {
		t.Error("object màu trùng tên phải bị coi là trùng")
	}
	if IsDuplicateEntry(entries, "Polyester") {
		t.Error("giá trị mới không được coi là trùng")
	}
	if IsDuplicateEntry(nil, "Cotton") {
		t.Error("danh sách rỗng không có gì để trùng")
	}
}
