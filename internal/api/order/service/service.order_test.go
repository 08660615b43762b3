// Package ordersvc - Test dựng filter tìm kiếm đơn hàng.
package ordersvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_Empty(t *testing.T) {
	filter := SearchFilter("")
	if len(filter) != 0 {
		t.Errorf("từ khóa rỗng phải trả về filter rỗng, nhận %v", filter)
	}
}

func TestSearchFilter_CoversCustomerAndItems(t *testing.T) {
	filter := SearchFilter("nguyen")
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("filter phải chứa $or, nhận %v", filter)
	}

	fields := map[string]bool{}
	for _, cond := range or {
		for field, value := range cond {
			fields[field] = true
			regex, ok := value.(bson.M)
			if !ok || regex["$options"] != "i" {
				t.Errorf("điều kiện '%s' phải là regex không phân biệt hoa thường, nhận %v", field, value)
			}
		}
	}
	for _, want := range []string{"email", "name", "items.title"} {
		if !fields[want] {
			t.Errorf("thiếu nhánh tìm kiếm trên '%s'", want)
		}
	}
}

func TestSearchFilter_EscapesRegexMetaChars(t *testing.T) {
	filter := SearchFilter("ao (nam")
	or := filter["$or"].([]bson.M)
	regex := or[0]["email"].(bson.M)
	if regex["$regex"] != `ao \(nam` {
		t.Errorf("ký tự regex đặc biệt phải được escape, nhận %v", regex["$regex"])
	}
}
