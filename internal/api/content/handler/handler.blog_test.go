// Package contenthdl - Test parse tags từ form multipart.
package contenthdl

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"rong", "", nil},
		{"json array", `["summer","sale"]`, []string{"summer", "sale"}},
		{"chuoi don", "summer", []string{"summer"}},
		{"json hong", `["summer"`, []string{`["summer"`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTags(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseTags(%q) = %v, muốn %v", tc.raw, got, tc.want)
			}
		})
	}
}
