// Package usersvc chứa service data access cho domain người dùng.
package usersvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "ayira_commerce/internal/api/base/service"
	usermodels "ayira_commerce/internal/api/user/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
)

// UserService là service quản lý người dùng (CRUD + đăng ký).
type UserService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.User](collection),
	}, nil
}

// Register đăng ký người dùng mới bằng insert nguyên tử dựa trên unique index của email.
// Không pre-check tồn tại: trùng email được phát hiện qua duplicate-key error của MongoDB.
//
// Returns:
//   - user: Người dùng vừa tạo (zero value nếu trùng)
//   - duplicated: true nếu email đã đăng ký trước đó
//   - error: Các lỗi khác ngoài trùng email
func (s *UserService) Register(ctx context.Context, user usermodels.User) (usermodels.User, bool, error) {
	created, err := s.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return *new(usermodels.User), true, nil
		}
		return *new(usermodels.User), false, err
	}
	return created, false, nil
}
