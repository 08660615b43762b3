// Package contenthdl chứa HTTP handler cho domain nội dung.
package contenthdl

import (
	"encoding/json"
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	basesvc "ayira_commerce/internal/api/base/service"
	contentdto "ayira_commerce/internal/api/content/dto"
	contentmodels "ayira_commerce/internal/api/content/models"
	contentsvc "ayira_commerce/internal/api/content/service"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
	"ayira_commerce/internal/upload"
	"ayira_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogHandler xử lý các request quản lý bài viết blog (upload multipart)
type BlogHandler struct {
	*basehdl.BaseHandler[contentmodels.Blog, contentdto.BlogCreateInput, contentdto.BlogUpdateInput]
	blogService *contentsvc.BlogService
	saver       *upload.Saver
}

// NewBlogHandler tạo instance mới của BlogHandler
func NewBlogHandler() (*BlogHandler, error) {
	blogService, err := contentsvc.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %v", err)
	}
	return &BlogHandler{
		BaseHandler: basehdl.NewBaseHandler[contentmodels.Blog, contentdto.BlogCreateInput, contentdto.BlogUpdateInput](blogService),
		blogService: blogService,
		saver:       upload.NewSaver(global.ServerConfig.UploadDir, global.ServerConfig.UploadMaxBytes),
	}, nil
}

// parseTags parse form field tags: chấp nhận JSON array hoặc chuỗi đơn.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{raw}
	}
	return tags
}

// HandleCreate tạo bài blog từ form multipart (POST /blogs).
// File ảnh thiếu không làm fail request.
func (h *BlogHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		title := c.FormValue("title")
		if title == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Title không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		blog := contentmodels.Blog{
			Title:       title,
			Category:    c.FormValue("category"),
			Content:     c.FormValue("content"),
			Tags:        parseTags(c.FormValue("tags")),
			AuthorName:  c.FormValue("authorName"),
			AuthorTitle: c.FormValue("authorTitle"),
		}

		var err error
		if blog.MainImage, err = h.saver.SaveFile(c, "mainImage", upload.CategoryBlogs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if blog.ExtraImages, err = h.saver.SaveFiles(c, "extraImages", upload.CategoryBlogs, 10); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if blog.AuthorImage, err = h.saver.SaveFile(c, "authorImage", upload.CategoryBlogs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.blogService.InsertOne(c.Context(), blog)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleUpdate cập nhật một phần bài blog từ form multipart (PUT /blogs/:id).
// Ảnh cũ được giữ qua các field existingMainImage/existingExtraImages/existingAuthorImage.
func (h *BlogHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.ErrInvalidID)
			return nil
		}

		set := map[string]interface{}{}
		for _, field := range []string{"title", "category", "content", "authorName", "authorTitle"} {
			if v := c.FormValue(field); v != "" {
				set[field] = v
			}
		}
		if tags := parseTags(c.FormValue("tags")); tags != nil {
			set["tags"] = tags
		}

		mainImage, err := h.saver.SaveFileOrExisting(c, "mainImage", "existingMainImage", upload.CategoryBlogs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if mainImage != "" {
			set["mainImage"] = mainImage
		}
		extraImages, err := h.saver.SaveFilesOrExisting(c, "extraImages", "existingExtraImages", upload.CategoryBlogs, 10, parseTags)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if len(extraImages) > 0 {
			set["extraImages"] = extraImages
		}
		authorImage, err := h.saver.SaveFileOrExisting(c, "authorImage", "existingAuthorImage", upload.CategoryBlogs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if authorImage != "" {
			set["authorImage"] = authorImage
		}

		updated, err := h.blogService.UpdateById(c.Context(), utility.String2ObjectID(id), &basesvc.UpdateData{Set: set})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleFindAll liệt kê blog, hỗ trợ tìm kiếm và lọc category kèm phân trang (GET /blogs)
func (h *BlogHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.blogService.Search(c.Context(), c.Query("search"), c.Query("category"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
