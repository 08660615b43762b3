// Package cataloghdl chứa HTTP handler cho domain catalog.
package cataloghdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	basehdl "ayira_commerce/internal/api/base/handler"
	basesvc "ayira_commerce/internal/api/base/service"
	catalogdto "ayira_commerce/internal/api/catalog/dto"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	catalogsvc "ayira_commerce/internal/api/catalog/service"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"
	"ayira_commerce/internal/upload"
	"ayira_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý các request quản lý sản phẩm, bao gồm upload multipart
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
	saver          *upload.Saver
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
		saver:          upload.NewSaver(global.ServerConfig.UploadDir, global.ServerConfig.UploadMaxBytes),
	}, nil
}

// formValue trả về giá trị form đầu tiên khác rỗng trong danh sách tên.
// Các tên sau là alias cũ của storefront (GSM_Code, availabelVarients, ...).
func formValue(c fiber.Ctx, names ...string) string {
	for _, name := range names {
		if v := c.FormValue(name); v != "" {
			return v
		}
	}
	return ""
}

// decodeJSONField parse một form field chứa JSON vào target, bỏ qua khi rỗng.
func decodeJSONField(raw, name string, target interface{}) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Field '%s' không đúng định dạng JSON: %v", name, err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// decodeStringList parse một chuỗi JSON array thành []string, dùng cho các field
// existing* khi update. Chuỗi đơn (không phải JSON) được coi là một phần tử.
func decodeStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{raw}
	}
	return list
}

// HandleCreate tạo sản phẩm từ form multipart (POST /post-products).
// File thiếu không làm fail request: field ảnh tương ứng để trống.
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		title := c.FormValue("title")
		if title == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Title không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		priceRaw := c.FormValue("price")
		price, err := strconv.ParseFloat(priceRaw, 64)
		if priceRaw == "" || err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Price phải là số và không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		product := catalogmodels.Product{
			Title:           title,
			MetaTitle:       c.FormValue("metaTitle"),
			MetaDescription: c.FormValue("metaDescription"),
			ProductCode:     c.FormValue("productCode"),
			GsmCode:         formValue(c, "gsmCode", "GSM_Code"),
			Category:        formValue(c, "category", "productCategory"),
			SubCategory:     formValue(c, "subCategory", "productSubCategory"),
			Size:            formValue(c, "size", "productSize"),
			Gender:          formValue(c, "gender", "Gender"),
			Fit:             c.FormValue("fit"),
			Sustainability:  formValue(c, "sustainability", "Sustainability"),
			Price:           price,
			Email:           c.FormValue("email"),
		}

		if raw := formValue(c, "discountPrice", "disCountPrice"); raw != "" {
			discount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "DiscountPrice phải là số", common.StatusBadRequest, nil))
				return nil
			}
			product.DiscountPrice = &discount
		}

		if err := decodeJSONField(c.FormValue("colors"), "colors", &product.Colors); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := decodeJSONField(formValue(c, "variants", "availabelVarients"), "variants", &product.Variants); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := decodeJSONField(c.FormValue("description"), "description", &product.Description); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := decodeJSONField(c.FormValue("printingEmbroidery"), "printingEmbroidery", &product.PrintingEmbroidery); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := decodeJSONField(c.FormValue("textileCare"), "textileCare", &product.TextileCare); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if product.MainImage, err = h.saver.SaveFile(c, "mainImage", upload.CategoryProducts); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if product.GalleryImages, err = h.saver.SaveFiles(c, "galleryImages", upload.CategoryProducts, 10); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if product.BrandLogo, err = h.saver.SaveFiles(c, "brandLogo", upload.CategoryProducts, 10); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if product.MainPdfs, err = h.saver.SaveFiles(c, "mainPdfs", upload.CategoryProducts, 10); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.productService.InsertOne(c.Context(), product)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleUpdate cập nhật một phần sản phẩm từ form multipart (PATCH /update-product/:id).
// Ảnh cũ được giữ qua các field existingMainImage/existingGalleryImages/... khi
// không upload file mới.
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.ErrInvalidID)
			return nil
		}

		set := map[string]interface{}{}
		textFields := map[string][]string{
			"title":           {"title"},
			"metaTitle":       {"metaTitle"},
			"metaDescription": {"metaDescription"},
			"productCode":     {"productCode"},
			"gsmCode":         {"gsmCode", "GSM_Code"},
			"category":        {"category", "productCategory"},
			"subCategory":     {"subCategory", "productSubCategory"},
			"size":            {"size", "productSize"},
			"gender":          {"gender", "Gender"},
			"fit":             {"fit"},
			"sustainability":  {"sustainability", "Sustainability"},
			"email":           {"email"},
		}
		for field, names := range textFields {
			if v := formValue(c, names...); v != "" {
				set[field] = v
			}
		}

		if raw := c.FormValue("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Price phải là số", common.StatusBadRequest, nil))
				return nil
			}
			set["price"] = price
		}
		if raw := formValue(c, "discountPrice", "disCountPrice"); raw != "" {
			discount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "DiscountPrice phải là số", common.StatusBadRequest, nil))
				return nil
			}
			set["discountPrice"] = discount
		}

		jsonFields := map[string][]string{
			"colors":             {"colors"},
			"variants":           {"variants", "availabelVarients"},
			"description":        {"description"},
			"printingEmbroidery": {"printingEmbroidery"},
			"textileCare":        {"textileCare"},
		}
		for field, names := range jsonFields {
			raw := formValue(c, names...)
			if raw == "" {
				continue
			}
			var parsed interface{}
			if err := decodeJSONField(raw, field, &parsed); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			set[field] = parsed
		}

		mainImage, err := h.saver.SaveFileOrExisting(c, "mainImage", "existingMainImage", upload.CategoryProducts)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if mainImage != "" {
			set["mainImage"] = mainImage
		}
		multiFiles := map[string][2]string{
			"galleryImages": {"galleryImages", "existingGalleryImages"},
			"brandLogo":     {"brandLogo", "existingBrandLogo"},
			"mainPdfs":      {"mainPdfs", "existingMainPdfs"},
		}
		for field, names := range multiFiles {
			urls, err := h.saver.SaveFilesOrExisting(c, names[0], names[1], upload.CategoryProducts, 10, decodeStringList)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if len(urls) > 0 {
				set[field] = urls
			}
		}

		updated, err := h.productService.UpdateById(c.Context(), utility.String2ObjectID(id), &basesvc.UpdateData{Set: set})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleFindFiltered tìm sản phẩm theo từ khóa và danh mục kèm phân trang
// (GET /find-filterd-products — path giữ nguyên lỗi chính tả của storefront cũ)
func (h *ProductHandler) HandleFindFiltered(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.productService.FindFiltered(c.Context(), c.Query("search"), c.Query("category"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
