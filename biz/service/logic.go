package service

import (
	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/dal/db"
)

// Logic owns the DAOs and the database handle used by the service layer.
type Logic struct {
	db         *gorm.DB
	assetDAO   *db.AssetDAO
	settingDAO *db.SettingDAO
}

func NewLogic(gdb *gorm.DB) *Logic {
	return &Logic{
		db:         gdb,
		assetDAO:   db.NewAssetDAO(),
		settingDAO: db.NewSettingDAO(),
	}
}
