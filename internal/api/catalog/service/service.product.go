// Package catalogsvc chứa service data access cho domain catalog.
package catalogsvc

import (
	"context"
	"fmt"
	"regexp"

	basemodels "ayira_commerce/internal/api/base/models"
	basesvc "ayira_commerce/internal/api/base/service"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductService là service quản lý sản phẩm (CRUD + tìm kiếm).
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// FilteredQuery dựng filter tìm kiếm sản phẩm: từ khóa không phân biệt
// hoa thường trên title/productCode/gsmCode, kết hợp lọc đúng danh mục.
// Từ khóa được escape để ký tự regex đặc biệt không làm hỏng query.
func FilteredQuery(search, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"productCode": regex},
			{"gsmCode": regex},
		}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// FindFiltered tìm sản phẩm theo từ khóa và danh mục kèm phân trang.
func (s *ProductService) FindFiltered(ctx context.Context, search, category string, page, limit int64) (*basemodels.PaginateResult[catalogmodels.Product], error) {
	return s.FindWithPagination(ctx, FilteredQuery(search, category), page, limit, nil)
}
