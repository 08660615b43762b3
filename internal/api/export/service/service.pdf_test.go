// Package exportsvc - Test render PDF và các helper dựng bảng.
package exportsvc

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestTruncateCell(t *testing.T) {
	short := "ngắn"
	if got := truncateCell(short); got != short {
		t.Errorf("chuỗi ngắn phải giữ nguyên, nhận %q", got)
	}

	long := strings.Repeat("a", maxCellRunes+10)
	got := truncateCell(long)
	if len([]rune(got)) != maxCellRunes {
		t.Errorf("chuỗi cắt phải đúng %d ký tự, nhận %d", maxCellRunes, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("chuỗi cắt phải kết thúc bằng dấu ba chấm, nhận %q", got)
	}
}

func TestCollectColumns(t *testing.T) {
	docs := []bson.M{
		{"_id": "1", "title": "a", "price": 1},
		{"_id": "2", "email": "x@y.com"},
	}
	columns := collectColumns(docs)

	if columns[0] != "_id" {
		t.Errorf("_id phải đứng đầu, nhận %v", columns)
	}
	rest := columns[1:]
	for i := 1; i < len(rest); i++ {
		if rest[i-1] > rest[i] {
			t.Errorf("các cột còn lại phải được sort: %v", rest)
		}
	}
	if len(columns) != 4 {
		t.Errorf("phải gom đủ cột từ mọi document, nhận %v", columns)
	}
}

func TestCollectColumns_CapsAtMax(t *testing.T) {
	doc := bson.M{}
	for i := 0; i < maxExportColumns+5; i++ {
		doc[string(rune('a'+i))] = i
	}
	columns := collectColumns([]bson.M{doc})
	if len(columns) != maxExportColumns {
		t.Errorf("số cột phải bị giới hạn ở %d, nhận %d", maxExportColumns, len(columns))
	}
}

func TestCellValue(t *testing.T) {
	if got := cellValue(nil); got != "" {
		t.Errorf("nil phải thành chuỗi rỗng, nhận %q", got)
	}
	if got := cellValue(int64(42)); got != "42" {
		t.Errorf("số phải format thành chuỗi, nhận %q", got)
	}
}

func TestRenderTable_ProducesPDF(t *testing.T) {
	buf, err := RenderTable("orders", []string{"_id", "email"}, [][]string{
		{"abc123", "a@b.com"},
		{"def456", "c@d.com"},
	})
	if err != nil {
		t.Fatalf("RenderTable lỗi: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output phải là file PDF hợp lệ (magic %PDF)")
	}
}

func TestRenderKeyValueSheet_ProducesPDF(t *testing.T) {
	buf, err := RenderKeyValueSheet("Áo polo", [][2]string{
		{"Product Code", "P-001"},
		{"Category", "men"},
	})
	if err != nil {
		t.Fatalf("RenderKeyValueSheet lỗi: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output phải là file PDF hợp lệ (magic %PDF)")
	}
}
