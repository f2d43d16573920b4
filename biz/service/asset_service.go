package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/commercegrid/mediabridge/biz/dal/model"
	"github.com/commercegrid/mediabridge/biz/model/media"
)

// --------------------- Asset operations ---------------------

// DeleteAsset removes the object behind a public URL. The owning platform
// is inferred from the URL shape unless overridden. Deleting an object
// that is already gone reports success, so cleanup routines can re-run
// against partially cleaned state.
func (s *Service) DeleteAsset(ctx context.Context, url string, override media.Platform) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}

	platform := override
	if platform == "" {
		platform = s.platformFromURL(url)
	}

	store, err := s.storeFor(platform)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete %s: %v", url, err)
		return false
	}

	key := s.keyFromURL(url, platform)
	if err := store.DeleteObject(ctx, key); err != nil {
		hlog.CtxErrorf(ctx, "delete %s: %v", url, err)
		return false
	}

	// Metadata is best-effort: the object is gone either way.
	if err := s.logic.DeleteAssetByURL(ctx, url); err != nil {
		hlog.CtxWarnf(ctx, "delete asset row %s: %v", url, err)
	}

	return true
}

// GetAssetFile returns the metadata row and object key for a stored file.
func (s *Service) GetAssetFile(ctx context.Context, fileID string) (*model.Asset, error) {
	if fileID == "" {
		return nil, ErrAssetNotFound
	}
	return s.logic.GetAsset(ctx, fileID)
}

// ListStyleAssets returns the metadata rows recorded for one product style.
func (s *Service) ListStyleAssets(ctx context.Context, styleID string) ([]model.Asset, error) {
	styleID = strings.TrimSpace(styleID)
	if styleID == "" {
		return nil, ErrAssetNotFound
	}
	return s.logic.ListAssetsByStyle(ctx, styleID)
}
