package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"

	"github.com/commercegrid/mediabridge/biz/dal/model"
	"github.com/commercegrid/mediabridge/biz/model/media"
	"github.com/commercegrid/mediabridge/pkg/imagecodec"
	"github.com/commercegrid/mediabridge/pkg/storage"
)

// Product image renditions. The large rendition never enlarges the source;
// all three are written as one unit.
var productMainSpecs = []struct {
	Code string
	Spec imagecodec.FitSpec
}{
	{"l", imagecodec.FitSpec{MaxWidth: 1200, MaxHeight: 1200, Quality: 90}},
	{"m", imagecodec.FitSpec{MaxWidth: 300, MaxHeight: 300, Quality: 85}},
	{"s", imagecodec.FitSpec{MaxWidth: 180, MaxHeight: 180, Quality: 80}},
}

var productVariantSpec = imagecodec.FitSpec{MaxWidth: 600, MaxHeight: 600, Quality: 90}

const productAltQuality = 90

var (
	errStyleIDRequired  = errors.New("style_id is required for product asset types")
	errColorKeyRequired = errors.New("color_key is required for product variant images")
	errFileNameRequired = errors.New("file_name is required")
)

// UploadAsset runs the upload pipeline. It always returns a structured
// result; errors are folded into the result instead of being propagated.
func (s *Service) UploadAsset(ctx context.Context, input *media.UploadInput) *media.UploadResult {
	if input == nil {
		return uploadFailure(errors.New("input required"))
	}
	if len(input.Data) == 0 {
		return uploadFailure(errors.New("file data is empty"))
	}
	if _, ok := media.ParseAssetType(string(input.Type)); !ok {
		return uploadFailure(fmt.Errorf("unsupported asset type %q", input.Type))
	}
	if err := s.upload.Validate(int64(len(input.Data)), input.ContentType, input.Data); err != nil {
		return uploadFailure(err)
	}

	platform := s.CurrentPlatform(ctx, input.Platform)
	store, err := s.storeFor(platform)
	if err != nil {
		hlog.CtxErrorf(ctx, "upload %s: %v", input.Type, err)
		return uploadFailure(err)
	}

	var result *media.UploadResult
	switch input.Type {
	case media.AssetProductMain:
		result = s.uploadProductMain(ctx, store, platform, input)
	case media.AssetProductAlt:
		result = s.uploadProductAlt(ctx, store, platform, input)
	case media.AssetProductVariant:
		result = s.uploadProductVariant(ctx, store, platform, input)
	case media.AssetSiteLogo, media.AssetFavicon, media.AssetBrandLogo,
		media.AssetUserAvatar, media.AssetBanner, media.AssetMiniBanner,
		media.AssetPageImage, media.AssetSiteAsset:
		result = s.uploadOriginal(ctx, store, platform, input)
	default:
		result = uploadFailure(fmt.Errorf("unsupported asset type %q", input.Type))
	}

	if !result.Success {
		hlog.CtxErrorf(ctx, "upload %s failed: %s", input.Type, result.Error)
	}
	return result
}

// uploadProductMain produces the large/medium/small JPEG triple. The three
// renditions are written jointly; if any write fails the whole operation
// fails and any rendition already written is removed again.
func (s *Service) uploadProductMain(ctx context.Context, store storage.Storage, platform media.Platform, input *media.UploadInput) *media.UploadResult {
	if input.StyleID == "" {
		return uploadFailure(errStyleIDRequired)
	}

	suffix := uniqueSuffix()
	dir := input.Type.Dir()

	keys := make([]string, len(productMainSpecs))
	urls := make([]string, len(productMainSpecs))

	g, gctx := errgroup.WithContext(ctx)
	for i, rendition := range productMainSpecs {
		key := fmt.Sprintf("%s/%s_%s_%s.jpg", dir, input.StyleID, rendition.Code, suffix)
		keys[i] = key
		spec := rendition.Spec

		g.Go(func() error {
			encoded, err := imagecodec.FitJPEG(input.Data, spec)
			if err != nil {
				return fmt.Errorf("resize %s: %w", key, err)
			}
			if err := store.PutObject(gctx, key, bytes.NewReader(encoded), "image/jpeg", int64(len(encoded))); err != nil {
				return fmt.Errorf("store %s: %w", key, err)
			}
			url, err := store.GenerateURL(gctx, key)
			if err != nil {
				return fmt.Errorf("url %s: %w", key, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// No partial triple survives a failed upload.
		for _, key := range keys {
			_ = store.DeleteObject(ctx, key)
		}
		return uploadFailure(err)
	}

	triple := &media.VariantURLs{Large: urls[0], Medium: urls[1], Small: urls[2]}
	asset := &model.Asset{
		AssetType:   string(input.Type),
		StyleID:     input.StyleID,
		FileName:    input.FileName,
		ContentType: "image/jpeg",
		FileSize:    int64(len(input.Data)),
		Platform:    string(platform),
		Path:        keys[0],
		URL:         triple.Large,
		URLMedium:   triple.Medium,
		URLSmall:    triple.Small,
	}
	if err := s.recordAsset(ctx, store, asset, keys...); err != nil {
		return uploadFailure(err)
	}

	return &media.UploadResult{
		Success:  true,
		URLs:     triple,
		Path:     keys[0],
		Platform: platform,
	}
}

// uploadProductAlt stores a single re-encoded JPEG alternate image.
func (s *Service) uploadProductAlt(ctx context.Context, store storage.Storage, platform media.Platform, input *media.UploadInput) *media.UploadResult {
	if input.StyleID == "" {
		return uploadFailure(errStyleIDRequired)
	}

	encoded, err := imagecodec.ReencodeJPEG(input.Data, productAltQuality)
	if err != nil {
		return uploadFailure(err)
	}

	key := fmt.Sprintf("%s/%s_alt_%d_%s.jpg", input.Type.Dir(), input.StyleID, input.AltIndex, uniqueSuffix())
	return s.putSingle(ctx, store, platform, input, key, encoded, "image/jpeg")
}

// uploadProductVariant stores a single 600x600-bounded JPEG. The key has no
// uniqueness suffix so re-uploading the same colour overwrites the previous
// variant image, which keeps exactly one image per colour.
func (s *Service) uploadProductVariant(ctx context.Context, store storage.Storage, platform media.Platform, input *media.UploadInput) *media.UploadResult {
	if input.StyleID == "" {
		return uploadFailure(errStyleIDRequired)
	}
	if input.ColorKey == "" {
		return uploadFailure(errColorKeyRequired)
	}

	encoded, err := imagecodec.FitJPEG(input.Data, productVariantSpec)
	if err != nil {
		return uploadFailure(err)
	}

	key := fmt.Sprintf("%s/%s_%s.jpg", input.Type.Dir(), input.StyleID, input.ColorKey)
	return s.putSingle(ctx, store, platform, input, key, encoded, "image/jpeg")
}

// uploadOriginal stores the bytes exactly as uploaded under the original
// file name. The name is preserved byte-for-byte; same-name uploads
// overwrite, which is expected behaviour.
func (s *Service) uploadOriginal(ctx context.Context, store storage.Storage, platform media.Platform, input *media.UploadInput) *media.UploadResult {
	if input.FileName == "" {
		return uploadFailure(errFileNameRequired)
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(input.Data)
	}

	key := input.Type.Dir() + "/" + input.FileName
	return s.putSingle(ctx, store, platform, input, key, input.Data, contentType)
}

func (s *Service) putSingle(ctx context.Context, store storage.Storage, platform media.Platform, input *media.UploadInput, key string, data []byte, contentType string) *media.UploadResult {
	if err := store.PutObject(ctx, key, bytes.NewReader(data), contentType, int64(len(data))); err != nil {
		return uploadFailure(err)
	}

	url, err := store.GenerateURL(ctx, key)
	if err != nil {
		_ = store.DeleteObject(ctx, key)
		return uploadFailure(err)
	}

	asset := &model.Asset{
		AssetType:   string(input.Type),
		StyleID:     input.StyleID,
		ColorKey:    input.ColorKey,
		FileName:    input.FileName,
		ContentType: contentType,
		FileSize:    int64(len(data)),
		Platform:    string(platform),
		Path:        key,
		URL:         url,
	}
	if err := s.recordAsset(ctx, store, asset, key); err != nil {
		return uploadFailure(err)
	}

	return &media.UploadResult{
		Success:  true,
		URL:      url,
		Path:     key,
		Platform: platform,
	}
}

// recordAsset persists the metadata row. Deterministic keys overwrite their
// previous object, so the stale row for the same URL is dropped first. If
// the row cannot be written the stored objects are rolled back.
func (s *Service) recordAsset(ctx context.Context, store storage.Storage, asset *model.Asset, keys ...string) error {
	_ = s.logic.DeleteAssetByURL(ctx, asset.URL)
	if err := s.logic.CreateAsset(ctx, asset); err != nil {
		for _, key := range keys {
			_ = store.DeleteObject(ctx, key)
		}
		return fmt.Errorf("record asset: %w", err)
	}
	return nil
}

func uploadFailure(err error) *media.UploadResult {
	return &media.UploadResult{Success: false, Error: err.Error()}
}

// uniqueSuffix derives the deterministic file name suffix from the current
// unix timestamp.
func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().Unix())
}
