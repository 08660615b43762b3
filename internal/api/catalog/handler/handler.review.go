package cataloghdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	catalogdto "ayira_commerce/internal/api/catalog/dto"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	catalogsvc "ayira_commerce/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// ReviewHandler xử lý các request quản lý đánh giá sản phẩm
type ReviewHandler struct {
	*basehdl.BaseHandler[catalogmodels.ProductReview, catalogdto.ReviewCreateInput, catalogdto.ReviewUpdateInput]
	reviewService *catalogsvc.ReviewService
}

// NewReviewHandler tạo instance mới của ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := catalogsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	return &ReviewHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.ProductReview, catalogdto.ReviewCreateInput, catalogdto.ReviewUpdateInput](reviewService),
		reviewService: reviewService,
	}, nil
}

// HandleFindAll liệt kê đánh giá, lọc theo productId nếu có (GET /find-productReview)
func (h *ReviewHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if productID := c.Query("productId"); productID != "" {
			filter["productId"] = productID
		}
		reviews, err := h.reviewService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, reviews, err)
		return nil
	})
}
