package contenthdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	contentdto "ayira_commerce/internal/api/content/dto"
	contentmodels "ayira_commerce/internal/api/content/models"
	contentsvc "ayira_commerce/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// CommentHandler xử lý các request quản lý bình luận blog
type CommentHandler struct {
	*basehdl.BaseHandler[contentmodels.Comment, contentdto.CommentCreateInput, contentdto.CommentUpdateInput]
	commentService *contentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := contentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[contentmodels.Comment, contentdto.CommentCreateInput, contentdto.CommentUpdateInput](commentService),
		commentService: commentService,
	}, nil
}

// HandleFindAll liệt kê bình luận, lọc theo blogId nếu có (GET /comments)
func (h *CommentHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if blogID := c.Query("blogId"); blogID != "" {
			filter["blogId"] = blogID
		}
		comments, err := h.commentService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, comments, err)
		return nil
	})
}
