// Package exporthdl chứa HTTP handler xuất dữ liệu ra PDF.
package exporthdl

import (
	"fmt"
	"strings"

	basehdl "ayira_commerce/internal/api/base/handler"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	catalogsvc "ayira_commerce/internal/api/catalog/service"
	exportsvc "ayira_commerce/internal/api/export/service"
	"ayira_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportHandler xử lý các request tải PDF
type ExportHandler struct {
	exportService  *exportsvc.ExportService
	productService *catalogsvc.ProductService
}

// NewExportHandler tạo instance mới của ExportHandler
func NewExportHandler() (*ExportHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	return &ExportHandler{
		exportService:  exportsvc.NewExportService(),
		productService: productService,
	}, nil
}

// sendPDF stream một buffer PDF về client dưới dạng attachment.
func sendPDF(c fiber.Ctx, filename string, data []byte) error {
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// HandleDownloadCollection xuất toàn bộ một collection trong allow-list
// thành bảng PDF (GET /download-pdf/:collectionName)
func (h *ExportHandler) HandleDownloadCollection(c fiber.Ctx) error {
	collectionName := c.Params("collectionName")
	if !h.exportService.IsAllowed(collectionName) {
		basehdl.WriteResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Collection '%s' không nằm trong danh sách được phép xuất", collectionName),
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	buf, err := h.exportService.ExportCollection(c.Context(), collectionName)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	return sendPDF(c, fmt.Sprintf("%s.pdf", collectionName), buf.Bytes())
}

// HandleDownloadProductSheet xuất bảng thông số của một sản phẩm ra PDF
// (GET /download-product-sheet/:id)
func (h *ExportHandler) HandleDownloadProductSheet(c fiber.Ctx) error {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		basehdl.WriteResponse(c, nil, common.ErrInvalidID)
		return nil
	}
	objID, _ := primitive.ObjectIDFromHex(id)

	product, err := h.productService.FindOneById(c.Context(), objID)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}

	buf, err := exportsvc.RenderKeyValueSheet(product.Title, productSheetPairs(product))
	if err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể render PDF", common.StatusInternalServerError, err))
		return nil
	}

	return sendPDF(c, fmt.Sprintf("product-%s.pdf", id), buf.Bytes())
}

// productSheetPairs dựng các cặp nhãn/giá trị cho bảng thông số sản phẩm.
func productSheetPairs(p catalogmodels.Product) [][2]string {
	colourNames := make([]string, 0, len(p.Colors))
	for _, colour := range p.Colors {
		colourNames = append(colourNames, colour.ColourName)
	}

	variants := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, strings.TrimSpace(fmt.Sprintf("%s %s", v.Colour, v.Size)))
	}

	price := fmt.Sprintf("%.2f", p.Price)
	if p.DiscountPrice != nil {
		price = fmt.Sprintf("%.2f (giảm còn %.2f)", p.Price, *p.DiscountPrice)
	}

	return [][2]string{
		{"Product Code", p.ProductCode},
		{"GSM Code", p.GsmCode},
		{"Category", p.Category},
		{"Sub Category", p.SubCategory},
		{"Size", p.Size},
		{"Gender", p.Gender},
		{"Fit", p.Fit},
		{"Sustainability", p.Sustainability},
		{"Price", price},
		{"Colours", strings.Join(colourNames, ", ")},
		{"Variants", strings.Join(variants, ", ")},
		{"Contact", p.Email},
	}
}
