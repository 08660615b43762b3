// Package wishlistsvc chứa service data access cho domain wishlist.
package wishlistsvc

import (
	"fmt"

	basesvc "ayira_commerce/internal/api/base/service"
	wishlistmodels "ayira_commerce/internal/api/wishlist/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
)

// WishlistService là service quản lý wishlist.
type WishlistService struct {
	*basesvc.BaseServiceMongoImpl[wishlistmodels.WishlistItem]
}

// NewWishlistService tạo mới WishlistService
func NewWishlistService() (*WishlistService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Wishlists)
	if !exist {
		return nil, fmt.Errorf("failed to get wishlists collection: %v", common.ErrNotFound)
	}

	return &WishlistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[wishlistmodels.WishlistItem](collection),
	}, nil
}
