package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	basesvc "ayira_commerce/internal/api/base/service"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttributeService quản lý document singleton chứa thuộc tính sản phẩm.
// Mọi thao tác dùng filter rỗng: document được tạo lần đầu bằng upsert.
type AttributeService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.ProductAttributeDoc]
}

// NewAttributeService tạo mới AttributeService
func NewAttributeService() (*AttributeService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.ProductAttributes)
	if !exist {
		return nil, fmt.Errorf("failed to get product attributes collection: %v", common.ErrNotFound)
	}

	return &AttributeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.ProductAttributeDoc](collection),
	}, nil
}

// AttributeText trích chuỗi so sánh trùng lặp từ một giá trị thuộc tính:
// string trả về chính nó, object màu trả về colourName.
// BSON decode value object về primitive.D/M nên phải xử lý cả ba dạng.
func AttributeText(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case map[string]interface{}:
		if name, ok := v["colourName"].(string); ok {
			return name, true
		}
	case primitive.M:
		if name, ok := v["colourName"].(string); ok {
			return name, true
		}
	case primitive.D:
		for _, elem := range v {
			if elem.Key == "colourName" {
				if name, ok := elem.Value.(string); ok {
					return name, true
				}
			}
		}
	}
	return "", false
}

// IsDuplicateEntry kiểm tra value đã tồn tại trong danh sách entry của một key
// hay chưa, so sánh không phân biệt hoa thường.
func IsDuplicateEntry(entries []catalogmodels.AttributeEntry, value interface{}) bool {
	candidate, ok := AttributeText(value)
	if !ok {
		return false
	}
	for _, entry := range entries {
		existing, ok := AttributeText(entry.Value)
		if ok && strings.EqualFold(existing, candidate) {
			return true
		}
	}
	return false
}

// Add thêm một giá trị vào nhóm thuộc tính `key`. Giá trị trùng
// (không phân biệt hoa thường) trong cùng nhóm bị từ chối.
func (s *AttributeService) Add(ctx context.Context, key string, value interface{}) (catalogmodels.ProductAttributeDoc, error) {
	var zero catalogmodels.ProductAttributeDoc

	// Document chưa tồn tại thì chắc chắn không trùng
	doc, err := s.FindOne(ctx, bson.M{}, nil)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}
	if err == nil && IsDuplicateEntry(doc.ProductAttributes[key], value) {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Giá trị thuộc tính đã tồn tại trong nhóm '%s'", key),
			common.StatusConflict,
			nil,
		)
	}

	entry := catalogmodels.AttributeEntry{
		ID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Value: value,
	}
	update := &basesvc.UpdateData{
		Push: map[string]interface{}{
			"productAttributes." + key: entry,
		},
	}
	return s.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
}

// Remove gỡ entry có id cho trước khỏi nhóm thuộc tính attrType.
// Trả về ErrNotFound khi không có entry nào khớp.
func (s *AttributeService) Remove(ctx context.Context, attrType, id string) (catalogmodels.ProductAttributeDoc, error) {
	var zero catalogmodels.ProductAttributeDoc

	field := "productAttributes." + attrType
	exists, err := s.DocumentExists(ctx, bson.M{field + ".id": id})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrNotFound
	}

	update := &basesvc.UpdateData{
		Pull: map[string]interface{}{
			field: bson.M{"id": id},
		},
	}
	return s.UpdateOne(ctx, bson.M{}, update, nil)
}
