// Package utility - Test các hàm tiện ích chuyển đổi và validate.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestS2Int64(t *testing.T) {
	if got := S2Int64("42"); got != 42 {
		t.Errorf("S2Int64(\"42\") = %d", got)
	}
	if got := S2Int64("abc"); got != 0 {
		t.Errorf("chuỗi không hợp lệ phải trả về 0, nhận %d", got)
	}
	if got := S2Int64(""); got != 0 {
		t.Errorf("chuỗi rỗng phải trả về 0, nhận %d", got)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	for _, bad := range []string{"", "user", "user@", "@example.com", "user@@example.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("email '%s' phải bị từ chối", bad)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"$eq", "$in"}, "$in") {
		t.Error("Contains phải tìm thấy phần tử tồn tại")
	}
	if Contains([]string{"$eq"}, "$where") {
		t.Error("Contains không được tìm thấy phần tử không tồn tại")
	}
}

func TestString2ObjectID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("round-trip ObjectID thất bại: %s != %s", got.Hex(), id.Hex())
	}
}

func TestToMap(t *testing.T) {
	type payload struct {
		Title string `bson:"title"`
		Price int64  `bson:"price"`
	}
	m, err := ToMap(payload{Title: "Áo", Price: 10})
	if err != nil {
		t.Fatal(err)
	}
	if m["title"] != "Áo" {
		t.Errorf("title sai: %v", m["title"])
	}
	if _, ok := m["price"]; !ok {
		t.Error("thiếu key price")
	}
}
