package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/dal/model"
	"github.com/commercegrid/mediabridge/pkg/constants"
)

var (
	ErrSettingNotFound    = errors.New("setting not found")
	ErrSettingKeyRequired = errors.New("setting_key is required")
)

// --------------------- Setting Operations ---------------------

// GetSettingValue retrieves a setting value with fallback strategy:
// 1. Query the setting table
// 2. Return the hardcoded default when one exists for the key
func (l *Logic) GetSettingValue(ctx context.Context, group, key string) (string, error) {
	setting, err := l.settingDAO.GetByKey(ctx, l.db, group, key)
	if err == nil && setting != nil {
		return setting.SettingValue, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if defaults, ok := constants.DefaultSettings[group]; ok {
		if value, ok := defaults[key]; ok {
			return value, nil
		}
	}
	return "", ErrSettingNotFound
}

// GetRawSettingValue retrieves a persisted setting value without the
// default fallback. The platform resolver needs to distinguish an explicit
// operator choice from the built-in default.
func (l *Logic) GetRawSettingValue(ctx context.Context, group, key string) (string, error) {
	setting, err := l.settingDAO.GetByKey(ctx, l.db, group, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}
		return "", err
	}
	return setting.SettingValue, nil
}

// GetSetting retrieves a setting entity with the same fallback strategy.
func (l *Logic) GetSetting(ctx context.Context, group, key string) (*model.Setting, error) {
	setting, err := l.settingDAO.GetByKey(ctx, l.db, group, key)
	if err == nil && setting != nil {
		return setting, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if defaults, ok := constants.DefaultSettings[group]; ok {
		if value, ok := defaults[key]; ok {
			return &model.Setting{
				SettingGroup: group,
				SettingKey:   key,
				SettingValue: value,
			}, nil
		}
	}
	return nil, ErrSettingNotFound
}

// ListSettingsByGroup returns all settings in a group, falling back to the
// defaults when the group has no persisted rows.
func (l *Logic) ListSettingsByGroup(ctx context.Context, group string) ([]model.Setting, error) {
	settings, err := l.settingDAO.ListByGroup(ctx, l.db, group)
	if err != nil {
		return nil, err
	}

	if len(settings) == 0 {
		for key, value := range constants.DefaultSettings[group] {
			settings = append(settings, model.Setting{
				SettingGroup: group,
				SettingKey:   key,
				SettingValue: value,
			})
		}
	}

	return settings, nil
}

// UpdateSetting updates a setting value, creating the row when absent.
func (l *Logic) UpdateSetting(ctx context.Context, group, key, value string) error {
	if key == "" {
		return ErrSettingKeyRequired
	}

	exists, err := l.settingDAO.ExistsByKey(ctx, l.db, group, key)
	if err != nil {
		return err
	}

	if exists {
		return l.settingDAO.Update(ctx, l.db, group, key, value)
	}

	return l.settingDAO.Create(ctx, l.db, &model.Setting{
		SettingGroup: group,
		SettingKey:   key,
		SettingValue: value,
	})
}
