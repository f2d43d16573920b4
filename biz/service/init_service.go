package service

import (
	"context"

	"github.com/commercegrid/mediabridge/biz/dal/model"
	"github.com/commercegrid/mediabridge/pkg/constants"
)

// EnsureDefaultSettings seeds the default setting rows that are missing.
// It runs once at startup.
func (s *Service) EnsureDefaultSettings(ctx context.Context) error {
	var missing []model.Setting
	for group, defaults := range constants.DefaultSettings {
		for key, value := range defaults {
			// The platform selector row is created only by an explicit
			// operator choice; a seeded row would shadow the deployment
			// heuristic.
			if group == constants.SettingGroupGeneral && key == constants.SettingStoragePlatform {
				continue
			}
			exists, err := s.logic.settingDAO.ExistsByKey(ctx, s.logic.db, group, key)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			missing = append(missing, model.Setting{
				SettingGroup: group,
				SettingKey:   key,
				SettingValue: value,
			})
		}
	}
	return s.logic.settingDAO.BatchCreate(ctx, s.logic.db, missing)
}
