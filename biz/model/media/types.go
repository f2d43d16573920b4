// Package media defines the domain types shared by the asset pipelines:
// storage platforms, asset type classifiers and the structures carried
// across the service boundary.
package media

import "time"

// Platform identifies which storage backend holds an asset.
type Platform string

const (
	PlatformLocal Platform = "local"
	PlatformS3    Platform = "s3"
)

// ParsePlatform maps user input to a Platform. The empty string is returned
// as-is so callers can treat it as "no override".
func ParsePlatform(s string) (Platform, bool) {
	switch s {
	case "":
		return "", true
	case "local":
		return PlatformLocal, true
	case "s3", "cloud", "blob":
		return PlatformS3, true
	default:
		return "", false
	}
}

// Other returns the opposite platform, used by the cross-platform listing
// fallback and by migration.
func (p Platform) Other() Platform {
	if p == PlatformLocal {
		return PlatformS3
	}
	return PlatformLocal
}

// AssetType classifies an uploaded image's role. Every operation that
// branches on the type (path derivation, upload, listing) switches
// exhaustively over these values and rejects anything else.
type AssetType string

const (
	AssetSiteLogo       AssetType = "site_logo"
	AssetFavicon        AssetType = "favicon"
	AssetProductMain    AssetType = "product_main"
	AssetProductAlt     AssetType = "product_alt"
	AssetProductVariant AssetType = "product_variant"
	AssetBrandLogo      AssetType = "brand_logo"
	AssetUserAvatar     AssetType = "user_avatar"
	AssetBanner         AssetType = "banner"
	AssetMiniBanner     AssetType = "mini_banner"
	AssetPageImage      AssetType = "page_image"
	AssetSiteAsset      AssetType = "site_asset"
)

// ParseAssetType maps user input to an AssetType.
func ParseAssetType(s string) (AssetType, bool) {
	switch AssetType(s) {
	case AssetSiteLogo, AssetFavicon, AssetProductMain, AssetProductAlt,
		AssetProductVariant, AssetBrandLogo, AssetUserAvatar, AssetBanner,
		AssetMiniBanner, AssetPageImage, AssetSiteAsset:
		return AssetType(s), true
	default:
		return "", false
	}
}

// Dir returns the logical storage subdirectory for the asset type.
func (t AssetType) Dir() string {
	switch t {
	case AssetSiteLogo:
		return "logos"
	case AssetFavicon:
		return "favicons"
	case AssetProductMain, AssetProductAlt, AssetProductVariant:
		return "products"
	case AssetBrandLogo:
		return "brands"
	case AssetUserAvatar:
		return "users"
	case AssetBanner:
		return "banners"
	case AssetMiniBanner:
		return "minibanners"
	case AssetPageImage:
		return "pages"
	case AssetSiteAsset:
		return "site"
	default:
		return "site"
	}
}

// Processed reports whether uploads of this type go through the JPEG
// pipeline. Unprocessed types store the original bytes verbatim under the
// original file name.
func (t AssetType) Processed() bool {
	switch t {
	case AssetProductMain, AssetProductAlt, AssetProductVariant:
		return true
	default:
		return false
	}
}

// UploadInput carries one upload through the pipeline.
type UploadInput struct {
	Data        []byte
	FileName    string
	ContentType string
	Type        AssetType
	// StyleID is the owning product style for product asset types.
	StyleID string
	// AltIndex distinguishes multiple alternate images of one style.
	AltIndex int
	// ColorKey selects the colour variant slot; uploads to the same slot
	// overwrite each other.
	ColorKey string
	// Platform optionally overrides the resolved platform.
	Platform Platform
}

// VariantURLs are the three renditions produced for product main images.
type VariantURLs struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
	Small  string `json:"small"`
}

// UploadResult is the structured outcome of an upload. Error carries a
// human-readable reason when Success is false; pipelines never panic or
// leak raw errors past this boundary.
type UploadResult struct {
	Success  bool         `json:"success"`
	URL      string       `json:"url,omitempty"`
	URLs     *VariantURLs `json:"urls,omitempty"`
	Path     string       `json:"path,omitempty"`
	Platform Platform     `json:"platform,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// MigrateResult is the structured outcome of a cross-platform move.
type MigrateResult struct {
	Success  bool         `json:"success"`
	URL      string       `json:"url,omitempty"`
	URLs     *VariantURLs `json:"urls,omitempty"`
	Platform Platform     `json:"platform,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// FileEntry is a read-only listing row for one stored object.
type FileEntry struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
	IsImage      bool      `json:"is_image"`
	Platform     Platform  `json:"platform"`
	// CrossPlatform marks entries returned by the fallback listing on the
	// platform that was not resolved for the request.
	CrossPlatform bool `json:"cross_platform,omitempty"`
}

// DirectoryInfo aggregates a logical media directory.
type DirectoryInfo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Path         string     `json:"path"`
	FileCount    int        `json:"file_count"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	Platform     Platform   `json:"platform"`
}
