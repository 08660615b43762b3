// Package basehdl - Test normalize/validate filter và transform DTO sang model.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct {
	Title string  `bson:"title"`
	Price float64 `bson:"price"`
	Email string  `bson:"email"`
}

type testCreateInput struct {
	Title string  `bson:"title"`
	Price float64 `bson:"price"`
	Email string  `bson:"email"`
}

type testUpdateInput struct {
	Title *string  `bson:"title,omitempty"`
	Price *float64 `bson:"price,omitempty"`
}

func newTestHandler() *BaseHandler[testModel, testCreateInput, testUpdateInput] {
	return NewBaseHandler[testModel, testCreateInput, testUpdateInput](nil)
}

func TestNormalizeFilter_IDFieldToObjectID(t *testing.T) {
	h := newTestHandler()
	hex := primitive.NewObjectID().Hex()

	out := h.normalizeFilter(map[string]interface{}{
		"productId": hex,
		"title":     hex, // không phải field ID, giữ nguyên string
	})

	if _, ok := out["productId"].(primitive.ObjectID); !ok {
		t.Errorf("productId phải được chuyển thành ObjectID, nhận %T", out["productId"])
	}
	if _, ok := out["title"].(string); !ok {
		t.Errorf("title phải giữ nguyên string, nhận %T", out["title"])
	}
}

func TestNormalizeFilter_ExtendedJSONOid(t *testing.T) {
	h := newTestHandler()
	hex := primitive.NewObjectID().Hex()

	out := h.normalizeFilter(map[string]interface{}{
		"author": map[string]interface{}{"$oid": hex},
	})

	oid, ok := out["author"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("giá trị $oid phải thành ObjectID, nhận %T", out["author"])
	}
	if oid.Hex() != hex {
		t.Errorf("ObjectID sai: %s != %s", oid.Hex(), hex)
	}
}

func TestNormalizeFilter_InOperatorWithIDs(t *testing.T) {
	h := newTestHandler()
	hex := primitive.NewObjectID().Hex()

	out := h.normalizeFilter(map[string]interface{}{
		"blogId": map[string]interface{}{
			"$in": []interface{}{hex, "not-an-oid"},
		},
	})

	inner := out["blogId"].(map[string]interface{})
	arr := inner["$in"].([]interface{})
	if _, ok := arr[0].(primitive.ObjectID); !ok {
		t.Errorf("phần tử hex hợp lệ trong $in phải thành ObjectID, nhận %T", arr[0])
	}
	if _, ok := arr[1].(string); !ok {
		t.Errorf("phần tử không hợp lệ phải giữ nguyên string, nhận %T", arr[1])
	}
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err, "trường password phải bị từ chối")
}

func TestValidateFilter_DisallowedOperator(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$where": "1"},
	})
	assert.Error(t, err, "toán tử $where phải bị từ chối")

	err = h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$regex": "ao", "$options": "i"},
	})
	assert.NoError(t, err, "$regex/$options nằm trong danh sách cho phép")
}

func TestValidateFilter_MaxFields(t *testing.T) {
	h := newTestHandler()
	filter := map[string]interface{}{}
	for i := 0; i < 11; i++ {
		filter[string(rune('a'+i))] = i
	}
	assert.Error(t, h.validateFilter(filter), "quá 10 trường phải bị từ chối")
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := newTestHandler()
	model, err := h.TransformCreateInputToModel(&testCreateInput{
		Title: "Áo polo",
		Price: 19.5,
		Email: "a@b.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Áo polo", model.Title)
	assert.Equal(t, 19.5, model.Price)
	assert.Equal(t, "a@b.com", model.Email)
}

func TestTransformUpdateInputToModel_SkipsNilPointers(t *testing.T) {
	h := newTestHandler()
	title := "Tên mới"
	model, err := h.TransformUpdateInputToModel(&testUpdateInput{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Tên mới", model.Title)
	assert.Zero(t, model.Price, "field nil không được ghi vào model")
}
