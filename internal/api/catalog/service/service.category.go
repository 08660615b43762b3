package catalogsvc

import (
	"fmt"

	basesvc "ayira_commerce/internal/api/base/service"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
)

// CategoryService là service quản lý danh mục sản phẩm (CRUD).
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}

// BannerService là service quản lý banner (CRUD).
type BannerService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Banner]
}

// NewBannerService tạo mới BannerService
func NewBannerService() (*BannerService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("failed to get banners collection: %v", common.ErrNotFound)
	}

	return &BannerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Banner](collection),
	}, nil
}

// SizeChartService là service quản lý bảng size (CRUD).
type SizeChartService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.SizeChart]
}

// NewSizeChartService tạo mới SizeChartService
func NewSizeChartService() (*SizeChartService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.SizeCharts)
	if !exist {
		return nil, fmt.Errorf("failed to get size charts collection: %v", common.ErrNotFound)
	}

	return &SizeChartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.SizeChart](collection),
	}, nil
}

// ReviewService là service quản lý đánh giá sản phẩm.
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.ProductReview]
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.ProductReviews)
	if !exist {
		return nil, fmt.Errorf("failed to get product reviews collection: %v", common.ErrNotFound)
	}

	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.ProductReview](collection),
	}, nil
}
