package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

var ErrAssetNotFound = errors.New("asset not found")

// --------------------- Asset Operations ---------------------

func (l *Logic) CreateAsset(ctx context.Context, asset *model.Asset) error {
	return l.assetDAO.Create(ctx, l.db, asset)
}

func (l *Logic) DeleteAsset(ctx context.Context, fileID string) error {
	return l.assetDAO.DeleteByFileID(ctx, l.db, fileID)
}

func (l *Logic) DeleteAssetByURL(ctx context.Context, url string) error {
	return l.assetDAO.DeleteByURL(ctx, l.db, url)
}

func (l *Logic) GetAsset(ctx context.Context, fileID string) (*model.Asset, error) {
	asset, err := l.assetDAO.GetByFileID(ctx, l.db, fileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssetNotFound
	}
	return asset, err
}

func (l *Logic) GetAssetByURL(ctx context.Context, url string) (*model.Asset, error) {
	asset, err := l.assetDAO.GetByURL(ctx, l.db, url)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssetNotFound
	}
	return asset, err
}

func (l *Logic) ListAssetsByStyle(ctx context.Context, styleID string) ([]model.Asset, error) {
	return l.assetDAO.ListByStyle(ctx, l.db, styleID)
}
