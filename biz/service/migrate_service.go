package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/commercegrid/mediabridge/biz/model/media"
)

// MigrateAsset moves one logical asset's bytes to the target platform. The
// new copy is written first; the original is deleted only after the
// re-upload succeeds, so a failed migration never leaves zero copies.
func (s *Service) MigrateAsset(ctx context.Context, currentURL string, target media.Platform, assetType media.AssetType) *media.MigrateResult {
	currentURL = strings.TrimSpace(currentURL)
	if currentURL == "" {
		return migrateFailure(errors.New("url is required"))
	}
	if target != media.PlatformLocal && target != media.PlatformS3 {
		return migrateFailure(fmt.Errorf("unsupported target platform %q", target))
	}
	if _, ok := media.ParseAssetType(string(assetType)); !ok {
		return migrateFailure(fmt.Errorf("unsupported asset type %q", assetType))
	}

	source := s.platformFromURL(currentURL)
	if source == target {
		return &media.MigrateResult{Success: true, URL: currentURL, Platform: target}
	}

	srcStore, err := s.storeFor(source)
	if err != nil {
		return migrateFailure(err)
	}

	key := s.keyFromURL(currentURL, source)
	reader, err := srcStore.GetObject(ctx, key)
	if err != nil {
		return migrateFailure(fmt.Errorf("read source: %w", err))
	}
	data, err := io.ReadAll(reader)
	_ = reader.Close()
	if err != nil {
		return migrateFailure(fmt.Errorf("read source: %w", err))
	}

	input := &media.UploadInput{
		Data:     data,
		FileName: path.Base(key),
		Type:     assetType,
		Platform: target,
	}

	// Recover upload context (owning style, colour slot) from the metadata
	// row when one exists; fall back to the file name prefix.
	if asset, err := s.logic.GetAssetByURL(ctx, currentURL); err == nil {
		input.StyleID = asset.StyleID
		input.ColorKey = asset.ColorKey
		if asset.FileName != "" {
			input.FileName = asset.FileName
		}
	} else if assetType == media.AssetProductMain || assetType == media.AssetProductAlt || assetType == media.AssetProductVariant {
		input.StyleID = styleFromFileName(path.Base(key))
	}

	result := s.UploadAsset(ctx, input)
	if !result.Success {
		// Original untouched; report the failed re-upload.
		return migrateFailure(errors.New(result.Error))
	}

	if !s.DeleteAsset(ctx, currentURL, source) {
		hlog.CtxWarnf(ctx, "migrate %s: original copy not removed", currentURL)
	}

	return &media.MigrateResult{
		Success:  true,
		URL:      result.URL,
		URLs:     result.URLs,
		Platform: target,
	}
}

func migrateFailure(err error) *media.MigrateResult {
	return &media.MigrateResult{Success: false, Error: err.Error()}
}

// styleFromFileName extracts the style id prefix from deterministic product
// file names such as "1001_l_1700000000.jpg".
func styleFromFileName(name string) string {
	if idx := strings.Index(name, "_"); idx > 0 {
		return name[:idx]
	}
	return strings.TrimSuffix(name, path.Ext(name))
}
