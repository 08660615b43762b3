// Package cataloghdl - Test các helper parse form sản phẩm.
package cataloghdl

import (
	"reflect"
	"testing"
)

func TestDecodeStringList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"rong", "", nil},
		{"json array", `["/uploads/a.jpg","/uploads/b.jpg"]`, []string{"/uploads/a.jpg", "/uploads/b.jpg"}},
		{"chuoi don", "/uploads/a.jpg", []string{"/uploads/a.jpg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeStringList(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("decodeStringList(%q) = %v, muốn %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDecodeJSONField(t *testing.T) {
	var target map[string]interface{}
	if err := decodeJSONField("", "description", &target); err != nil {
		t.Errorf("field rỗng phải được bỏ qua, nhận lỗi: %v", err)
	}

	if err := decodeJSONField(`{"fabric":"cotton"}`, "description", &target); err != nil {
		t.Fatalf("JSON hợp lệ bị từ chối: %v", err)
	}
	if target["fabric"] != "cotton" {
		t.Errorf("decode sai: %v", target)
	}

	var bad map[string]interface{}
	if err := decodeJSONField(`{oops`, "description", &bad); err == nil {
		t.Error("JSON hỏng phải trả về lỗi validation")
	}
}
