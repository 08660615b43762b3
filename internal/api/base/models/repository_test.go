package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateResultJSONFieldNames(t *testing.T) {
	result := PaginateResult[string]{
		Page:      2,
		Limit:     10,
		ItemCount: 3,
		Items:     []string{"a", "b", "c"},
		Total:     23,
		TotalPage: 3,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Storefront parse theo đúng tên field này, đổi tên sẽ làm vỡ phân trang
	assert.Equal(t, float64(2), decoded["currentPage"], "Trang hiện tại phải nằm trong field currentPage")
	assert.Equal(t, float64(3), decoded["totalPages"], "Tổng số trang phải nằm trong field totalPages")
	assert.Equal(t, float64(23), decoded["total"])
	assert.NotContains(t, decoded, "page")
	assert.NotContains(t, decoded, "totalPage")
}
