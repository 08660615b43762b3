package cataloghdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	catalogdto "ayira_commerce/internal/api/catalog/dto"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	catalogsvc "ayira_commerce/internal/api/catalog/service"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
	"ayira_commerce/internal/upload"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các request quản lý danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	return &CategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService),
	}, nil
}

// BannerHandler xử lý các request quản lý banner (upload multipart)
type BannerHandler struct {
	*basehdl.BaseHandler[catalogmodels.Banner, catalogdto.BannerCreateInput, catalogdto.BannerUpdateInput]
	bannerService *catalogsvc.BannerService
	saver         *upload.Saver
}

// NewBannerHandler tạo instance mới của BannerHandler
func NewBannerHandler() (*BannerHandler, error) {
	bannerService, err := catalogsvc.NewBannerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create banner service: %v", err)
	}
	return &BannerHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.Banner, catalogdto.BannerCreateInput, catalogdto.BannerUpdateInput](bannerService),
		bannerService: bannerService,
		saver:         upload.NewSaver(global.ServerConfig.UploadDir, global.ServerConfig.UploadMaxBytes),
	}, nil
}

// HandleCreate tạo banner từ form multipart, ảnh là bắt buộc (POST /banners)
func (h *BannerHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		image, err := h.saver.SaveFile(c, "image", upload.CategoryBanners)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if image == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Ảnh banner không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		banner := catalogmodels.Banner{
			Title: c.FormValue("title"),
			Link:  c.FormValue("link"),
			Image: image,
		}
		created, err := h.bannerService.InsertOne(c.Context(), banner)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// SizeChartHandler xử lý các request quản lý bảng size (upload multipart)
type SizeChartHandler struct {
	*basehdl.BaseHandler[catalogmodels.SizeChart, catalogdto.SizeChartCreateInput, catalogdto.SizeChartUpdateInput]
	sizeChartService *catalogsvc.SizeChartService
	saver            *upload.Saver
}

// NewSizeChartHandler tạo instance mới của SizeChartHandler
func NewSizeChartHandler() (*SizeChartHandler, error) {
	sizeChartService, err := catalogsvc.NewSizeChartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create size chart service: %v", err)
	}
	return &SizeChartHandler{
		BaseHandler:      basehdl.NewBaseHandler[catalogmodels.SizeChart, catalogdto.SizeChartCreateInput, catalogdto.SizeChartUpdateInput](sizeChartService),
		sizeChartService: sizeChartService,
		saver:            upload.NewSaver(global.ServerConfig.UploadDir, global.ServerConfig.UploadMaxBytes),
	}, nil
}

// HandleCreate tạo bảng size từ form multipart, ảnh là bắt buộc (POST /size-charts)
func (h *SizeChartHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		image, err := h.saver.SaveFile(c, "image", upload.CategorySizeCharts)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if image == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Ảnh bảng size không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		chart := catalogmodels.SizeChart{
			Title:    c.FormValue("title"),
			Category: c.FormValue("category"),
			Image:    image,
		}
		created, err := h.sizeChartService.InsertOne(c.Context(), chart)
		h.HandleResponse(c, created, err)
		return nil
	})
}
