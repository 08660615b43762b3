package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Colour - Một màu khả dụng của sản phẩm.
type Colour struct {
	ColourName string `json:"colourName" bson:"colourName"`
	ColourCode string `json:"colourCode,omitempty" bson:"colourCode,omitempty"` // Mã hex
}

// Variant - Một tổ hợp màu/size cụ thể của sản phẩm.
type Variant struct {
	Colour string `json:"colour,omitempty" bson:"colour,omitempty"`
	Size   string `json:"size,omitempty" bson:"size,omitempty"`
	Stock  int64  `json:"stock,omitempty" bson:"stock,omitempty"`
}

// Product - Sản phẩm trong catalog. Các field ảnh/pdf lưu URL path
// dạng /uploads/products/<filename> do upload.Saver sinh ra.
type Product struct {
	ID                 primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Title              string                 `json:"title" bson:"title" index:"text"`
	MetaTitle          string                 `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription    string                 `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	ProductCode        string                 `json:"productCode,omitempty" bson:"productCode,omitempty" index:"single"`
	GsmCode            string                 `json:"gsmCode,omitempty" bson:"gsmCode,omitempty"`
	Category           string                 `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	SubCategory        string                 `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Size               string                 `json:"size,omitempty" bson:"size,omitempty"`
	Colors             []Colour               `json:"colors,omitempty" bson:"colors,omitempty"`
	Variants           []Variant              `json:"variants,omitempty" bson:"variants,omitempty"`
	Gender             string                 `json:"gender,omitempty" bson:"gender,omitempty"`
	Fit                string                 `json:"fit,omitempty" bson:"fit,omitempty"`
	Sustainability     string                 `json:"sustainability,omitempty" bson:"sustainability,omitempty"`
	Price              float64                `json:"price" bson:"price"`
	DiscountPrice      *float64               `json:"discountPrice,omitempty" bson:"discountPrice,omitempty"` // nil khi không giảm giá
	Description        map[string]interface{} `json:"description,omitempty" bson:"description,omitempty"`     // Rich description từ editor
	PrintingEmbroidery map[string]interface{} `json:"printingEmbroidery,omitempty" bson:"printingEmbroidery,omitempty"`
	TextileCare        map[string]interface{} `json:"textileCare,omitempty" bson:"textileCare,omitempty"`
	Email              string                 `json:"email,omitempty" bson:"email,omitempty"` // Email người đăng sản phẩm
	MainImage          string                 `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
	GalleryImages      []string               `json:"galleryImages,omitempty" bson:"galleryImages,omitempty"`
	BrandLogo          []string               `json:"brandLogo,omitempty" bson:"brandLogo,omitempty"`
	MainPdfs           []string               `json:"mainPdfs,omitempty" bson:"mainPdfs,omitempty"`
	CreatedAt          int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64                  `json:"updatedAt" bson:"updatedAt"`
}
