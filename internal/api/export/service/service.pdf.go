// Package exportsvc render dữ liệu collection và sản phẩm ra file PDF.
package exportsvc

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// tableLayout là cấu hình chung cho các bảng PDF xuất ra.
const (
	pageMarginMM   = 10.0
	rowHeightMM    = 8.0
	headerFontSize = 10.0
	cellFontSize   = 9.0
	maxCellRunes   = 48 // Giá trị dài bị cắt để giữ layout bảng
)

// truncateCell cắt giá trị ô quá dài, thêm dấu ba chấm.
func truncateCell(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellRunes {
		return s
	}
	return string(runes[:maxCellRunes-3]) + "..."
}

// RenderTable render một bảng tĩnh ra PDF: một dòng header lặp lại mỗi trang
// và một dòng cho mỗi phần tử dữ liệu.
func RenderTable(title string, headers []string, rows [][]string) (*bytes.Buffer, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)

	pageWidth, _ := pdf.GetPageSize()
	usableWidth := pageWidth - 2*pageMarginMM
	colWidth := usableWidth / float64(len(headers))

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", headerFontSize)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range headers {
			pdf.CellFormat(colWidth, rowHeightMM, truncateCell(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(rowHeightMM)
		pdf.SetFont("Helvetica", "", cellFontSize)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(usableWidth, 10, title, "", 1, "C", false, 0, "")
		writeHeader()
	})

	pdf.AddPage()
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, rowHeightMM, truncateCell(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeightMM)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &buf, nil
}

// RenderKeyValueSheet render một trang thông số dạng hai cột nhãn/giá trị,
// dùng cho bảng thông số sản phẩm.
func RenderKeyValueSheet(title string, pairs [][2]string) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usableWidth := pageWidth - 2*pageMarginMM
	labelWidth := usableWidth * 0.35
	valueWidth := usableWidth - labelWidth

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usableWidth, 12, truncateCell(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", cellFontSize)
	for _, pair := range pairs {
		pdf.SetFont("Helvetica", "B", cellFontSize)
		pdf.CellFormat(labelWidth, rowHeightMM, truncateCell(pair[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", cellFontSize)
		pdf.CellFormat(valueWidth, rowHeightMM, truncateCell(pair[1]), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &buf, nil
}
