package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

func TestAssetDAO_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewAssetDAO()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		asset := &model.Asset{
			AssetType:   "product_main",
			StyleID:     "1001",
			FileName:    "1001.jpg",
			ContentType: "image/jpeg",
			FileSize:    2048,
			Platform:    "local",
			Path:        "products/1001_l_1700000000.jpg",
			URL:         "/media/products/1001_l_1700000000.jpg",
			URLMedium:   "/media/products/1001_m_1700000000.jpg",
			URLSmall:    "/media/products/1001_s_1700000000.jpg",
		}

		if err := dao.Create(ctx, db, asset); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if asset.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}
		if asset.FileID == "" {
			t.Error("Expected FileID to be generated")
		}

		found, err := dao.GetByFileID(ctx, db, asset.FileID)
		if err != nil {
			t.Fatalf("GetByFileID failed: %v", err)
		}
		if found.URLMedium != asset.URLMedium {
			t.Errorf("Expected medium URL %q, got %q", asset.URLMedium, found.URLMedium)
		}
	})

	t.Run("KeepsProvidedFileID", func(t *testing.T) {
		asset := &model.Asset{
			FileID:    "fixed-id",
			AssetType: "banner",
			FileName:  "hero.jpg",
			Platform:  "local",
			URL:       "/media/banners/hero.jpg",
		}
		if err := dao.Create(ctx, db, asset); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if asset.FileID != "fixed-id" {
			t.Errorf("Expected FileID to be kept, got %q", asset.FileID)
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		if err := dao.Create(ctx, db, nil); err != nil {
			t.Errorf("Expected nil entity to be a no-op, got %v", err)
		}
	})
}

func TestAssetDAO_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewAssetDAO()
	ctx := context.Background()

	asset := &model.Asset{
		AssetType: "brand_logo",
		FileName:  "acme.png",
		Platform:  "local",
		URL:       "/media/brands/acme.png",
	}
	if err := dao.Create(ctx, db, asset); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		asset.Platform = "s3"
		asset.URL = "https://cdn.example.com/brands/acme.png"
		if err := dao.Update(ctx, db, asset); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := dao.GetByFileID(ctx, db, asset.FileID)
		if err != nil {
			t.Fatalf("GetByFileID failed: %v", err)
		}
		if found.Platform != "s3" {
			t.Errorf("Expected platform s3, got %q", found.Platform)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		missing := &model.Asset{FileID: "no-such-id", Platform: "s3"}
		err := dao.Update(ctx, db, missing)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestAssetDAO_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewAssetDAO()
	ctx := context.Background()

	asset := &model.Asset{
		AssetType: "user_avatar",
		FileName:  "avatar.png",
		Platform:  "local",
		URL:       "/media/users/avatar.png",
	}
	if err := dao.Create(ctx, db, asset); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("DeleteByURL", func(t *testing.T) {
		if err := dao.DeleteByURL(ctx, db, asset.URL); err != nil {
			t.Fatalf("DeleteByURL failed: %v", err)
		}
		if _, err := dao.GetByURL(ctx, db, asset.URL); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteMissingURL", func(t *testing.T) {
		if err := dao.DeleteByURL(ctx, db, "/media/users/missing.png"); err != nil {
			t.Errorf("Expected deleting a missing row to succeed, got %v", err)
		}
	})

	t.Run("DeleteByFileID", func(t *testing.T) {
		other := &model.Asset{
			AssetType: "favicon",
			FileName:  "favicon.ico",
			Platform:  "local",
			URL:       "/media/favicons/favicon.ico",
		}
		if err := dao.Create(ctx, db, other); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := dao.DeleteByFileID(ctx, db, other.FileID); err != nil {
			t.Fatalf("DeleteByFileID failed: %v", err)
		}
		if _, err := dao.GetByFileID(ctx, db, other.FileID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound after delete, got %v", err)
		}
	})
}

func TestAssetDAO_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewAssetDAO()
	ctx := context.Background()

	rows := []*model.Asset{
		{AssetType: "product_main", StyleID: "1001", FileName: "a.jpg", Platform: "local", URL: "/media/products/1001_l_1.jpg"},
		{AssetType: "product_variant", StyleID: "1001", ColorKey: "red", FileName: "red.jpg", Platform: "local", URL: "/media/products/1001_red.jpg"},
		{AssetType: "product_main", StyleID: "2002", FileName: "b.jpg", Platform: "local", URL: "/media/products/2002_l_1.jpg"},
	}
	for _, row := range rows {
		if err := dao.Create(ctx, db, row); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("ByStyle", func(t *testing.T) {
		assets, err := dao.ListByStyle(ctx, db, "1001")
		if err != nil {
			t.Fatalf("ListByStyle failed: %v", err)
		}
		if len(assets) != 2 {
			t.Errorf("Expected 2 assets for style 1001, got %d", len(assets))
		}
	})

	t.Run("ByType", func(t *testing.T) {
		assets, err := dao.ListByType(ctx, db, "product_main")
		if err != nil {
			t.Fatalf("ListByType failed: %v", err)
		}
		if len(assets) != 2 {
			t.Errorf("Expected 2 product_main assets, got %d", len(assets))
		}
	})

	t.Run("EmptyStyle", func(t *testing.T) {
		assets, err := dao.ListByStyle(ctx, db, "9999")
		if err != nil {
			t.Fatalf("ListByStyle failed: %v", err)
		}
		if len(assets) != 0 {
			t.Errorf("Expected no assets, got %d", len(assets))
		}
	})
}
