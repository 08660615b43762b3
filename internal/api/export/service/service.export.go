package exportsvc

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"ayira_commerce/internal/common"
	"ayira_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// maxExportColumns giới hạn số cột để bảng còn đọc được trên khổ A4 ngang.
const maxExportColumns = 8

// ExportService xuất dữ liệu collection ra PDF.
type ExportService struct{}

// NewExportService tạo mới ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// AllowedCollections trả về danh sách collection được phép xuất:
// đúng các collection đã đăng ký trong registry.
func (s *ExportService) AllowedCollections() []string {
	return global.RegistryCollections.Names()
}

// IsAllowed kiểm tra collectionName có nằm trong allow-list không.
func (s *ExportService) IsAllowed(collectionName string) bool {
	_, exist := global.RegistryCollections.Get(collectionName)
	return exist
}

// collectColumns gom tên field của các document, loại _id lên đầu,
// còn lại sắp theo alphabet và cắt ở maxExportColumns.
func collectColumns(docs []bson.M) []string {
	seen := map[string]bool{}
	for _, doc := range docs {
		for key := range doc {
			seen[key] = true
		}
	}

	columns := []string{}
	for key := range seen {
		if key != "_id" {
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	if seen["_id"] {
		columns = append([]string{"_id"}, columns...)
	}
	if len(columns) > maxExportColumns {
		columns = columns[:maxExportColumns]
	}
	return columns
}

// cellValue format một giá trị BSON thành chuỗi hiển thị trong ô bảng.
func cellValue(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// ExportCollection fetch toàn bộ document của một collection trong allow-list
// và render thành bảng PDF.
func (s *ExportService) ExportCollection(ctx context.Context, collectionName string) (*bytes.Buffer, error) {
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Collection '%s' không nằm trong danh sách được phép xuất", collectionName),
			common.StatusBadRequest,
			nil,
		)
	}

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	columns := collectColumns(docs)
	if len(columns) == 0 {
		columns = []string{"_id"}
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = cellValue(doc[col])
		}
		rows = append(rows, row)
	}

	buf, err := RenderTable(collectionName, columns, rows)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể render PDF", common.StatusInternalServerError, err)
	}
	return buf, nil
}
