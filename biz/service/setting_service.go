package service

import (
	"context"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

// GetSetting retrieves a setting with default fallback.
func (s *Service) GetSetting(ctx context.Context, group, key string) (*model.Setting, error) {
	return s.logic.GetSetting(ctx, group, key)
}

// GetSettingValue retrieves a setting value with default fallback.
func (s *Service) GetSettingValue(ctx context.Context, group, key string) (string, error) {
	return s.logic.GetSettingValue(ctx, group, key)
}

// ListSettings returns all settings in a group.
func (s *Service) ListSettings(ctx context.Context, group string) ([]model.Setting, error) {
	return s.logic.ListSettingsByGroup(ctx, group)
}

// UpdateSetting updates a setting value, creating the row when absent.
func (s *Service) UpdateSetting(ctx context.Context, group, key, value string) error {
	return s.logic.UpdateSetting(ctx, group, key, value)
}
