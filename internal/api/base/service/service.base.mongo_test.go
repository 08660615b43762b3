// Package basesvc - Test các helper thuần (phân trang, build UpdateData).
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int64
		want  int64
	}{
		{"rong", 0, 10, 0},
		{"chia het", 20, 10, 2},
		{"lam tron len", 21, 10, 3},
		{"it hon mot trang", 3, 10, 1},
		{"limit khong hop le", 5, 0, 0},
		{"total am", -1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.total, tc.limit); got != tc.want {
				t.Errorf("TotalPages(%d, %d) = %d, muốn %d", tc.total, tc.limit, got, tc.want)
			}
		})
	}
}

func TestToUpdateData_PassthroughPointer(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"title": "x"}}
	out, err := ToUpdateData(in)
	assert.NoError(t, err)
	assert.Same(t, in, out, "con trỏ UpdateData phải được trả về nguyên vẹn")
}

func TestToUpdateData_FromOperatorMap(t *testing.T) {
	out, err := ToUpdateData(map[string]interface{}{
		"$set":  map[string]interface{}{"status": "pending"},
		"$push": map[string]interface{}{"items": "a"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", out.Set["status"])
	assert.Equal(t, "a", out.Push["items"])
	assert.Empty(t, out.Unset)
}

func TestUpdateData_MarshalOnlySetFields(t *testing.T) {
	update := &UpdateData{Set: map[string]interface{}{"title": "Áo thun"}}
	raw, err := bson.Marshal(update)
	assert.NoError(t, err)

	var doc bson.M
	assert.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "$set")
	assert.NotContains(t, doc, "$push", "operator rỗng không được xuất hiện trong update doc")
	assert.NotContains(t, doc, "$unset")
}

func TestNewPaginateResult(t *testing.T) {
	t.Run("items nil chuan hoa thanh slice rong", func(t *testing.T) {
		result := newPaginateResult[string](1, 10, 0, nil)
		assert.NotNil(t, result.Items, "Items nil phải trở thành slice rỗng để JSON trả về []")
		assert.Len(t, result.Items, 0)
		assert.Equal(t, int64(0), result.ItemCount)
		assert.Equal(t, int64(0), result.TotalPage)
	})

	t.Run("dem dung so muc va so trang", func(t *testing.T) {
		result := newPaginateResult(2, 10, 23, []string{"a", "b", "c"})
		assert.Equal(t, int64(2), result.Page)
		assert.Equal(t, int64(10), result.Limit)
		assert.Equal(t, int64(3), result.ItemCount)
		assert.Equal(t, int64(23), result.Total)
		assert.Equal(t, int64(3), result.TotalPage)
	})
}
