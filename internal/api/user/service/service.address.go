package usersvc

import (
	"fmt"

	basesvc "ayira_commerce/internal/api/base/service"
	usermodels "ayira_commerce/internal/api/user/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
)

// AddressService là service quản lý địa chỉ giao hàng (CRUD).
type AddressService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.Address]
}

// NewAddressService tạo mới AddressService
func NewAddressService() (*AddressService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Addresses)
	if !exist {
		return nil, fmt.Errorf("failed to get address collection: %v", common.ErrNotFound)
	}

	return &AddressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.Address](collection),
	}, nil
}
