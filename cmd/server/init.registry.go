package main

import (
	"context"

	"ayira_commerce/config"
	catalogmodels "ayira_commerce/internal/api/catalog/models"
	contentmodels "ayira_commerce/internal/api/content/models"
	ordermodels "ayira_commerce/internal/api/order/models"
	usermodels "ayira_commerce/internal/api/user/models"
	wishlistmodels "ayira_commerce/internal/api/wishlist/models"
	"ayira_commerce/internal/database"
	"ayira_commerce/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	// Khởi tạo các index cho các collection từ tag `index` trên model
	initIndexes(global.MongoDB_Session, global.ServerConfig)
	logrus.Info("Initialized collection indexes")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.ColNames.Orders,
		global.ColNames.Users,
		global.ColNames.Addresses,
		global.ColNames.Blogs,
		global.ColNames.Comments,
		global.ColNames.ProductAttributes,
		global.ColNames.ProductReviews,
		global.ColNames.Products,
		global.ColNames.Categories,
		global.ColNames.Banners,
		global.ColNames.SizeCharts,
		global.ColNames.Wishlists,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}

// initIndexes tạo index cho từng collection theo tag trên model tương ứng.
// Collection thuộc tính sản phẩm chỉ chứa một document duy nhất nên không cần index.
func initIndexes(client *mongo.Client, cfg *config.Configuration) {
	db := client.Database(cfg.MongoDB_DBName)
	ctx := context.TODO()

	database.CreateIndexes(ctx, db.Collection(global.ColNames.Users), usermodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Addresses), usermodels.Address{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Banners), catalogmodels.Banner{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.SizeCharts), catalogmodels.SizeChart{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.ProductReviews), catalogmodels.ProductReview{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Blogs), contentmodels.Blog{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Comments), contentmodels.Comment{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Wishlists), wishlistmodels.WishlistItem{})
}
