// Package ordersvc chứa service data access cho domain đơn hàng.
package ordersvc

import (
	"context"
	"fmt"
	"regexp"

	basesvc "ayira_commerce/internal/api/base/service"
	basemodels "ayira_commerce/internal/api/base/models"
	ordermodels "ayira_commerce/internal/api/order/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService là service quản lý đơn hàng. Đơn hàng là bất biến:
// service không expose thao tác update/delete qua router.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
	}, nil
}

// SearchFilter dựng filter tìm kiếm đơn hàng không phân biệt hoa thường
// trên email, tên khách và tên sản phẩm trong giỏ. Từ khóa được escape
// để ký tự regex đặc biệt trong input không làm hỏng query.
func SearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	return bson.M{
		"$or": []bson.M{
			{"email": regex},
			{"name": regex},
			{"items.title": regex},
		},
	}
}

// Search tìm đơn hàng theo từ khóa kèm phân trang.
func (s *OrderService) Search(ctx context.Context, search string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	return s.FindWithPagination(ctx, SearchFilter(search), page, limit, nil)
}

// FindById tìm đơn hàng theo id hex string.
func (s *OrderService) FindById(ctx context.Context, id string) (ordermodels.Order, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return *new(ordermodels.Order), common.ErrInvalidID
	}
	return s.FindOneById(ctx, objID)
}
