// Package catalogsvc - Test dựng filter tìm kiếm sản phẩm.
package catalogsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFilteredQuery_Empty(t *testing.T) {
	filter := FilteredQuery("", "")
	if len(filter) != 0 {
		t.Errorf("không có điều kiện thì filter phải rỗng, nhận %v", filter)
	}
}

func TestFilteredQuery_SearchOnly(t *testing.T) {
	filter := FilteredQuery("polo", "")
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("search phải sinh $or, nhận %v", filter)
	}
	if len(or) != 3 {
		t.Errorf("$or phải phủ title/productCode/gsmCode, nhận %d nhánh", len(or))
	}
	regex, ok := or[0]["title"].(bson.M)
	if !ok || regex["$regex"] != "polo" || regex["$options"] != "i" {
		t.Errorf("regex không phân biệt hoa thường bị sai: %v", or[0])
	}
	if _, hasCategory := filter["category"]; hasCategory {
		t.Error("không truyền category thì filter không được chứa category")
	}
}

func TestFilteredQuery_SearchAndCategory(t *testing.T) {
	filter := FilteredQuery("polo", "men")
	if filter["category"] != "men" {
		t.Errorf("category phải được filter chính xác, nhận %v", filter["category"])
	}
	if _, ok := filter["$or"]; !ok {
		t.Error("search và category phải kết hợp trong cùng filter")
	}
}

func TestFilteredQuery_EscapesRegexMetaChars(t *testing.T) {
	filter := FilteredQuery("100% cotton (xuat khau", "")
	or := filter["$or"].([]bson.M)
	regex := or[0]["title"].(bson.M)
	if regex["$regex"] != `100% cotton \(xuat khau` {
		t.Errorf("ký tự regex đặc biệt phải được escape, nhận %v", regex["$regex"])
	}
}
