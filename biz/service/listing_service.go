package service

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/commercegrid/mediabridge/biz/model/media"
	"github.com/commercegrid/mediabridge/pkg/common"
	"github.com/commercegrid/mediabridge/pkg/storage"
)

// maxListPages caps cloud listing pagination so a runaway bucket cannot
// stall a request.
const maxListPages = 10

// ListPlatformFiles lists the objects under a logical directory on the
// resolved platform. When the resolved platform yields nothing, the other
// platform is checked opportunistically and its entries are returned
// annotated as cross-platform. The fallback triggers on empty results
// only; non-empty listings are never merged.
func (s *Service) ListPlatformFiles(ctx context.Context, dir string, override media.Platform) ([]media.FileEntry, error) {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		return nil, fmt.Errorf("directory path is required")
	}

	platform := s.CurrentPlatform(ctx, override)

	entries, err := s.listOn(ctx, platform, dir, false)
	if err != nil {
		hlog.CtxWarnf(ctx, "list %s on %s: %v", dir, platform, err)
	}
	if len(entries) > 0 {
		return entries, nil
	}

	other, otherErr := s.listOn(ctx, platform.Other(), dir, true)
	if otherErr != nil {
		hlog.CtxWarnf(ctx, "list %s on %s: %v", dir, platform.Other(), otherErr)
	}
	if len(other) > 0 {
		return other, nil
	}

	if err != nil {
		return nil, err
	}
	return []media.FileEntry{}, nil
}

func (s *Service) listOn(ctx context.Context, platform media.Platform, dir string, cross bool) ([]media.FileEntry, error) {
	store, err := s.storeFor(platform)
	if err != nil {
		return nil, err
	}

	var objects []storage.ObjectInfo
	if platform == media.PlatformS3 {
		objects, err = s.listCloudObjects(ctx, store, dir)
	} else {
		var page *storage.ListPage
		page, err = store.ListObjects(ctx, dir+"/", "", 0)
		if page != nil {
			objects = page.Objects
		}
	}
	if err != nil {
		return nil, err
	}

	entries := make([]media.FileEntry, 0, len(objects))
	for _, obj := range objects {
		url, uerr := store.GenerateURL(ctx, obj.Key)
		if uerr != nil {
			continue
		}
		name := path.Base(obj.Key)
		entries = append(entries, media.FileEntry{
			Name:          name,
			Size:          obj.Size,
			Type:          common.FileExtension(name),
			LastModified:  obj.LastModified,
			URL:           url,
			IsImage:       common.IsImageExtension(name),
			Platform:      platform,
			CrossPlatform: cross,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// listCloudObjects pages through the bucket with several candidate prefix
// patterns; historical uploads wrote keys with and without a media/ root.
// If no pattern matches anything it falls back to an unfiltered listing
// filtered manually by directory name.
func (s *Service) listCloudObjects(ctx context.Context, store storage.Storage, dir string) ([]storage.ObjectInfo, error) {
	prefixes := []string{
		dir + "/",
		"media/" + dir + "/",
	}

	var lastErr error
	for _, prefix := range prefixes {
		objects, err := collectPages(ctx, store, prefix)
		if err != nil {
			lastErr = err
			continue
		}
		if len(objects) > 0 {
			return objects, nil
		}
	}

	// No prefix pattern matched: list everything and filter by directory.
	objects, err := collectPages(ctx, store, "")
	if err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}

	filtered := objects[:0]
	for _, obj := range objects {
		if strings.Contains(obj.Key, dir+"/") {
			filtered = append(filtered, obj)
		}
	}
	return filtered, nil
}

func collectPages(ctx context.Context, store storage.Storage, prefix string) ([]storage.ObjectInfo, error) {
	var objects []storage.ObjectInfo
	cursor := ""
	for page := 0; page < maxListPages; page++ {
		result, err := store.ListObjects(ctx, prefix, cursor, 0)
		if err != nil {
			return nil, err
		}
		objects = append(objects, result.Objects...)
		if !result.HasMore {
			break
		}
		cursor = result.NextCursor
	}
	return objects, nil
}

// DirectoryConfig describes one logical media directory exposed through
// GetPlatformDirectoryInfo.
type DirectoryConfig struct {
	ID   string
	Name string
	Path string
}

// MediaDirectories is the registry of logical directories, derived from
// the asset type subdirectories.
var MediaDirectories = []DirectoryConfig{
	{ID: "logos", Name: "Site logos", Path: "logos"},
	{ID: "favicons", Name: "Favicons", Path: "favicons"},
	{ID: "products", Name: "Product images", Path: "products"},
	{ID: "brands", Name: "Brand logos", Path: "brands"},
	{ID: "users", Name: "User avatars", Path: "users"},
	{ID: "banners", Name: "Banners", Path: "banners"},
	{ID: "minibanners", Name: "Mini banners", Path: "minibanners"},
	{ID: "pages", Name: "Page images", Path: "pages"},
	{ID: "site", Name: "Site assets", Path: "site"},
}

// GetPlatformDirectoryInfo aggregates one logical directory on the resolved
// platform: file count and most recent modification.
func (s *Service) GetPlatformDirectoryInfo(ctx context.Context, directoryID string, cfg *DirectoryConfig, override media.Platform) (*media.DirectoryInfo, error) {
	if cfg == nil {
		for i := range MediaDirectories {
			if MediaDirectories[i].ID == directoryID {
				cfg = &MediaDirectories[i]
				break
			}
		}
	}
	if cfg == nil {
		return nil, fmt.Errorf("unknown media directory %q", directoryID)
	}

	entries, err := s.ListPlatformFiles(ctx, cfg.Path, override)
	if err != nil {
		return nil, err
	}

	info := &media.DirectoryInfo{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Path:      cfg.Path,
		FileCount: len(entries),
		Platform:  s.CurrentPlatform(ctx, override),
	}

	var latest time.Time
	for _, entry := range entries {
		if entry.LastModified.After(latest) {
			latest = entry.LastModified
		}
		if entry.CrossPlatform {
			info.Platform = entry.Platform
		}
	}
	if !latest.IsZero() {
		info.LastModified = &latest
	}

	return info, nil
}

// ListDirectories aggregates every registered media directory.
func (s *Service) ListDirectories(ctx context.Context, override media.Platform) ([]media.DirectoryInfo, error) {
	infos := make([]media.DirectoryInfo, 0, len(MediaDirectories))
	for i := range MediaDirectories {
		info, err := s.GetPlatformDirectoryInfo(ctx, MediaDirectories[i].ID, &MediaDirectories[i], override)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}
