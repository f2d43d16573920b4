package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/commercegrid/mediabridge/biz/model/media"
	"github.com/commercegrid/mediabridge/biz/service"
)

// MediaHandler exposes the asset pipelines over HTTP.
type MediaHandler struct {
	service  *service.Service
	mediaDir string
}

func NewMediaHandler(svc *service.Service, mediaDir string) *MediaHandler {
	return &MediaHandler{service: svc, mediaDir: mediaDir}
}

// UploadAsset handles multipart uploads and runs them through the upload
// pipeline. Pipeline failures come back as a structured result, not as an
// HTTP error.
func (h *MediaHandler) UploadAsset(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeInternalError(c, err)
		return
	}

	assetType, ok := media.ParseAssetType(string(c.FormValue("asset_type")))
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported asset type %q", c.FormValue("asset_type")))
		return
	}
	platform, ok := media.ParsePlatform(string(c.FormValue("platform")))
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported platform %q", c.FormValue("platform")))
		return
	}

	altIndex := 0
	if raw := string(c.FormValue("alt_index")); raw != "" {
		altIndex, err = strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(c, fmt.Errorf("invalid alt_index %q", raw))
			return
		}
	}

	input := &media.UploadInput{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Type:        assetType,
		StyleID:     string(c.FormValue("style_id")),
		AltIndex:    altIndex,
		ColorKey:    string(c.FormValue("color_key")),
		Platform:    platform,
	}

	writeOK(c, h.service.UploadAsset(ctx, input))
}

type deleteAssetRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

// DeleteAsset removes the object behind a public URL.
func (h *MediaHandler) DeleteAsset(ctx context.Context, c *app.RequestContext) {
	var req deleteAssetRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeBadRequest(c, errors.New("url is required"))
		return
	}
	platform, ok := media.ParsePlatform(req.Platform)
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported platform %q", req.Platform))
		return
	}

	deleted := h.service.DeleteAsset(ctx, req.URL, platform)
	writeOK(c, map[string]any{"deleted": deleted})
}

type migrateAssetRequest struct {
	URL            string `json:"url"`
	TargetPlatform string `json:"target_platform"`
	AssetType      string `json:"asset_type"`
}

// MigrateAsset moves an asset's bytes to the target platform.
func (h *MediaHandler) MigrateAsset(ctx context.Context, c *app.RequestContext) {
	var req migrateAssetRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	target, ok := media.ParsePlatform(req.TargetPlatform)
	if !ok || target == "" {
		writeBadRequest(c, fmt.Errorf("unsupported target platform %q", req.TargetPlatform))
		return
	}
	assetType, ok := media.ParseAssetType(req.AssetType)
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported asset type %q", req.AssetType))
		return
	}

	writeOK(c, h.service.MigrateAsset(ctx, req.URL, target, assetType))
}

// ListFiles lists objects under a logical media directory.
func (h *MediaHandler) ListFiles(ctx context.Context, c *app.RequestContext) {
	dir := strings.TrimSpace(c.Query("dir"))
	if dir == "" {
		writeBadRequest(c, errors.New("dir is required"))
		return
	}
	platform, ok := media.ParsePlatform(c.Query("platform"))
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported platform %q", c.Query("platform")))
		return
	}

	entries, err := h.service.ListPlatformFiles(ctx, dir, platform)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	writeOK(c, map[string]any{"files": entries})
}

// ListDirectories aggregates every registered media directory.
func (h *MediaHandler) ListDirectories(ctx context.Context, c *app.RequestContext) {
	platform, ok := media.ParsePlatform(c.Query("platform"))
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported platform %q", c.Query("platform")))
		return
	}

	infos, err := h.service.ListDirectories(ctx, platform)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	writeOK(c, map[string]any{"directories": infos})
}

// GetDirectory aggregates a single media directory.
func (h *MediaHandler) GetDirectory(ctx context.Context, c *app.RequestContext) {
	platform, ok := media.ParsePlatform(c.Query("platform"))
	if !ok {
		writeBadRequest(c, fmt.Errorf("unsupported platform %q", c.Query("platform")))
		return
	}

	info, err := h.service.GetPlatformDirectoryInfo(ctx, c.Param("id"), nil, platform)
	if err != nil {
		writeNotFound(c, err)
		return
	}
	writeOK(c, info)
}

// ServeMedia streams local-platform files back to the client.
func (h *MediaHandler) ServeMedia(ctx context.Context, c *app.RequestContext) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	if rel == "" {
		writeBadRequest(c, errors.New("file path is required"))
		return
	}

	// Reject path traversal before touching the filesystem.
	clean := path.Clean("/" + rel)
	full := filepath.Join(h.mediaDir, filepath.FromSlash(strings.TrimPrefix(clean, "/")))

	content, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(full))
	if contentType == "" {
		contentType = consts.MIMEApplicationOctetStream
	}
	c.Response.Header.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", path.Base(clean)))
	c.Data(consts.StatusOK, contentType, content)
}
