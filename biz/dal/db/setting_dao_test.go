package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

func TestSettingDAO_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingDAO()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setting := &model.Setting{
			SettingGroup: "general",
			SettingKey:   "storage_platform",
			SettingValue: "local",
		}
		if err := dao.Create(ctx, db, setting); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if setting.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		err := dao.Create(ctx, db, nil)
		if err == nil || err.Error() != "setting must not be nil" {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("MissingGroup", func(t *testing.T) {
		err := dao.Create(ctx, db, &model.Setting{SettingKey: "k"})
		if err == nil || err.Error() != "setting_group is required" {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		err := dao.Create(ctx, db, &model.Setting{SettingGroup: "general"})
		if err == nil || err.Error() != "setting_key is required" {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestSettingDAO_UpdateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingDAO()
	ctx := context.Background()

	CreateTestSetting(t, db, "general", "storage_platform", "local")

	if err := dao.Update(ctx, db, "general", "storage_platform", "s3"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := dao.GetByKey(ctx, db, "general", "storage_platform")
	if err != nil {
		t.Fatalf("GetByKey failed: %v", err)
	}
	if found.SettingValue != "s3" {
		t.Errorf("Expected value s3, got %q", found.SettingValue)
	}

	if _, err := dao.GetByKey(ctx, db, "general", "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestSettingDAO_ListAndExists(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingDAO()
	ctx := context.Background()

	CreateTestSetting(t, db, "general", "storage_platform", "local")
	CreateTestSetting(t, db, "general", "site_name", "storefront")
	CreateTestSetting(t, db, "theme", "primary_color", "#336699")

	settings, err := dao.ListByGroup(ctx, db, "general")
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("Expected 2 settings, got %d", len(settings))
	}
	// Ordered by key.
	if settings[0].SettingKey != "site_name" || settings[1].SettingKey != "storage_platform" {
		t.Errorf("Unexpected order: %s, %s", settings[0].SettingKey, settings[1].SettingKey)
	}

	exists, err := dao.ExistsByKey(ctx, db, "theme", "primary_color")
	if err != nil {
		t.Fatalf("ExistsByKey failed: %v", err)
	}
	if !exists {
		t.Error("Expected setting to exist")
	}

	exists, err = dao.ExistsByKey(ctx, db, "theme", "missing")
	if err != nil {
		t.Fatalf("ExistsByKey failed: %v", err)
	}
	if exists {
		t.Error("Expected setting to be absent")
	}
}

func TestSettingDAO_BatchCreateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingDAO()
	ctx := context.Background()

	entities := []model.Setting{
		{SettingGroup: "general", SettingKey: "a", SettingValue: "1"},
		{SettingGroup: "general", SettingKey: "b", SettingValue: "2"},
	}
	if err := dao.BatchCreate(ctx, db, entities); err != nil {
		t.Fatalf("BatchCreate failed: %v", err)
	}
	if err := dao.BatchCreate(ctx, db, nil); err != nil {
		t.Errorf("Expected empty batch to be a no-op, got %v", err)
	}

	if err := dao.Delete(ctx, db, "general", "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	exists, err := dao.ExistsByKey(ctx, db, "general", "a")
	if err != nil {
		t.Fatalf("ExistsByKey failed: %v", err)
	}
	if exists {
		t.Error("Expected setting to be deleted")
	}
}
