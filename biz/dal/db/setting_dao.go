package db

import (
	"context"
	"errors"

	"github.com/commercegrid/mediabridge/biz/dal/model"

	"gorm.io/gorm"
)

// SettingDAO wraps basic CRUD operations for the grouped settings store.
type SettingDAO struct{}

func NewSettingDAO() *SettingDAO { return &SettingDAO{} }

// Create persists a new setting entry.
func (dao *SettingDAO) Create(ctx context.Context, db *gorm.DB, entity *model.Setting) error {
	if entity == nil {
		return errors.New("setting must not be nil")
	}
	if entity.SettingGroup == "" {
		return errors.New("setting_group is required")
	}
	if entity.SettingKey == "" {
		return errors.New("setting_key is required")
	}
	return db.WithContext(ctx).Create(entity).Error
}

// Update updates the value for an existing setting.
func (dao *SettingDAO) Update(ctx context.Context, db *gorm.DB, group, key, value string) error {
	return db.WithContext(ctx).
		Model(&model.Setting{}).
		Where("setting_group = ? AND setting_key = ?", group, key).
		Update("setting_value", value).
		Error
}

// GetByKey fetches a single setting by group and key.
func (dao *SettingDAO) GetByKey(ctx context.Context, db *gorm.DB, group, key string) (*model.Setting, error) {
	var entity model.Setting
	if err := db.WithContext(ctx).
		Where("setting_group = ? AND setting_key = ?", group, key).
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// ListByGroup returns all settings in a group.
func (dao *SettingDAO) ListByGroup(ctx context.Context, db *gorm.DB, group string) ([]model.Setting, error) {
	var entities []model.Setting
	if err := db.WithContext(ctx).
		Where("setting_group = ?", group).
		Order("setting_key ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ExistsByKey checks if a setting with the given group and key exists.
func (dao *SettingDAO) ExistsByKey(ctx context.Context, db *gorm.DB, group, key string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.Setting{}).
		Where("setting_group = ? AND setting_key = ?", group, key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// BatchCreate creates multiple settings in one statement.
func (dao *SettingDAO) BatchCreate(ctx context.Context, db *gorm.DB, entities []model.Setting) error {
	if len(entities) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&entities).Error
}

// Delete removes a single setting by group and key.
func (dao *SettingDAO) Delete(ctx context.Context, db *gorm.DB, group, key string) error {
	return db.WithContext(ctx).
		Where("setting_group = ? AND setting_key = ?", group, key).
		Delete(&model.Setting{}).Error
}
