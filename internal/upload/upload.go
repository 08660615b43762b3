// Package upload lưu file multipart lên đĩa và trả về URL công khai dưới /uploads.
package upload

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"ayira_commerce/internal/common"
	"ayira_commerce/internal/logger"
)

// Các category con dưới thư mục upload, mỗi resource một thư mục riêng.
const (
	CategoryProducts   = "products"
	CategoryBlogs      = "blogs"
	CategoryBanners    = "banners"
	CategorySizeCharts = "size_charts"
)

// Saver lưu file upload vào BaseDir/<category> và trả về đường dẫn URL BaseURL/<category>/<name>.
type Saver struct {
	BaseDir     string   // Thư mục gốc trên đĩa (ví dụ "uploads")
	BaseURL     string   // Prefix URL công khai (ví dụ "/uploads")
	MaxBytes    int64    // Kích thước tối đa cho một file
	AllowedExts []string // Danh sách extension được phép (rỗng = cho phép tất cả)
}

// NewSaver tạo Saver với giới hạn kích thước cho trước.
func NewSaver(baseDir string, maxBytes int64) *Saver {
	return &Saver{
		BaseDir:  baseDir,
		BaseURL:  "/uploads",
		MaxBytes: maxBytes,
		AllowedExts: []string{
			".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".pdf",
		},
	}
}

// GenerateFilename sinh tên file duy nhất: <unixmilli>-<9 chữ số ngẫu nhiên><ext>.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

// validate kiểm tra kích thước và extension của file header.
func (s *Saver) validate(fh *multipart.FileHeader) error {
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return common.NewError(
			common.ErrCodeValidationUpload,
			fmt.Sprintf("File '%s' vượt quá kích thước cho phép (%d bytes)", fh.Filename, s.MaxBytes),
			common.StatusBadRequest,
			nil,
		)
	}
	if len(s.AllowedExts) > 0 {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		for _, allowed := range s.AllowedExts {
			if ext == allowed {
				return nil
			}
		}
		return common.NewError(
			common.ErrCodeValidationUpload,
			fmt.Sprintf("Định dạng file '%s' không được hỗ trợ", ext),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// saveHeader ghi file header vào BaseDir/<category> và trả về URL path.
func (s *Saver) saveHeader(c fiber.Ctx, fh *multipart.FileHeader, category string) (string, error) {
	if err := s.validate(fh); err != nil {
		return "", err
	}

	dir := filepath.Join(s.BaseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể tạo thư mục upload '%s'", dir),
			common.StatusInternalServerError,
			err,
		)
	}

	name := GenerateFilename(fh.Filename)
	dst := filepath.Join(dir, name)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể lưu file '%s'", fh.Filename),
			common.StatusInternalServerError,
			err,
		)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"category": category,
		"file":     name,
		"size":     fh.Size,
	}).Debug("Đã lưu file upload")

	return s.BaseURL + "/" + category + "/" + name, nil
}

// SaveFile lưu một file từ form field. Field không có file trả về chuỗi rỗng, không lỗi.
func (s *Saver) SaveFile(c fiber.Ctx, field, category string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		// Không có file trong field là hợp lệ, không làm fail request
		return "", nil
	}
	return s.saveHeader(c, fh, category)
}

// SaveFiles lưu nhiều file từ cùng một form field, tối đa max file.
// Field không có file trả về slice rỗng, không lỗi.
func (s *Saver) SaveFiles(c fiber.Ctx, field, category string, max int) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return []string{}, nil
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return []string{}, nil
	}
	if max > 0 && len(headers) > max {
		return nil, common.NewError(
			common.ErrCodeValidationUpload,
			fmt.Sprintf("Field '%s' cho phép tối đa %d file, nhận được %d", field, max, len(headers)),
			common.StatusBadRequest,
			nil,
		)
	}

	urls := make([]string, 0, len(headers))
	for _, fh := range headers {
		url, err := s.saveHeader(c, fh, category)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// SaveFileOrExisting lưu file từ field; nếu không có file, dùng giá trị form value
// existingField (đường dẫn cũ) để ảnh trước đó không bị mất khi update.
func (s *Saver) SaveFileOrExisting(c fiber.Ctx, field, existingField, category string) (string, error) {
	url, err := s.SaveFile(c, field, category)
	if err != nil {
		return "", err
	}
	if url != "" {
		return url, nil
	}
	return c.FormValue(existingField), nil
}

// SaveFilesOrExisting lưu nhiều file từ field; nếu không có file nào, parse form value
// existingField (JSON array các đường dẫn cũ) qua hàm decode do caller truyền vào.
func (s *Saver) SaveFilesOrExisting(c fiber.Ctx, field, existingField, category string, max int, decode func(string) []string) ([]string, error) {
	urls, err := s.SaveFiles(c, field, category, max)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		return urls, nil
	}
	if raw := c.FormValue(existingField); raw != "" && decode != nil {
		return decode(raw), nil
	}
	return []string{}, nil
}
