// Package contentsvc chứa service data access cho domain nội dung.
package contentsvc

import (
	"context"
	"fmt"
	"regexp"

	basemodels "ayira_commerce/internal/api/base/models"
	basesvc "ayira_commerce/internal/api/base/service"
	contentmodels "ayira_commerce/internal/api/content/models"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// BlogService là service quản lý bài viết blog (CRUD + tìm kiếm).
type BlogService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Blog]
}

// NewBlogService tạo mới BlogService
func NewBlogService() (*BlogService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Blogs)
	if !exist {
		return nil, fmt.Errorf("failed to get blogs collection: %v", common.ErrNotFound)
	}

	return &BlogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Blog](collection),
	}, nil
}

// SearchFilter dựng filter tìm blog: từ khóa không phân biệt hoa thường trên
// title/content/authorName, kết hợp lọc đúng category. Từ khóa được escape
// để ký tự regex đặc biệt không làm hỏng query.
func SearchFilter(search, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"content": regex},
			{"authorName": regex},
		}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// Search tìm blog theo từ khóa và category kèm phân trang.
func (s *BlogService) Search(ctx context.Context, search, category string, page, limit int64) (*basemodels.PaginateResult[contentmodels.Blog], error) {
	return s.FindWithPagination(ctx, SearchFilter(search, category), page, limit, nil)
}

// CommentService là service quản lý bình luận blog.
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Comment]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Comment](collection),
	}, nil
}
