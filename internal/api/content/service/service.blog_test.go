// Package contentsvc - Test dựng filter tìm kiếm blog.
package contentsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_EmptyAndCategoryOnly(t *testing.T) {
	if filter := SearchFilter("", ""); len(filter) != 0 {
		t.Errorf("không có điều kiện thì filter phải rỗng, nhận %v", filter)
	}

	filter := SearchFilter("", "fashion")
	if filter["category"] != "fashion" {
		t.Errorf("category phải được filter chính xác, nhận %v", filter["category"])
	}
	if _, ok := filter["$or"]; ok {
		t.Error("không có từ khóa thì filter không được chứa $or")
	}
}

func TestSearchFilter_SearchBranches(t *testing.T) {
	filter := SearchFilter("xu hướng", "")
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("từ khóa phải sinh $or, nhận %v", filter)
	}

	fields := map[string]bool{}
	for _, cond := range or {
		for field := range cond {
			fields[field] = true
		}
	}
	for _, want := range []string{"title", "content", "authorName"} {
		if !fields[want] {
			t.Errorf("thiếu nhánh tìm kiếm trên '%s'", want)
		}
	}
}

func TestSearchFilter_EscapesRegexMetaChars(t *testing.T) {
	filter := SearchFilter("hoi & dap?", "")
	or := filter["$or"].([]bson.M)
	regex := or[0]["title"].(bson.M)
	if regex["$regex"] != `hoi & dap\?` {
		t.Errorf("ký tự regex đặc biệt phải được escape, nhận %v", regex["$regex"])
	}
}
