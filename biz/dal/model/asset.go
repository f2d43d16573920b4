package model

import (
	"time"

	"gorm.io/gorm"
)

// Asset stores metadata for uploaded media files.
type Asset struct {
	ID        uint           `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
	UpdatedAt time.Time      `json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	FileID    string         `gorm:"column:file_id;uniqueIndex:idx_file" json:"file_id,omitempty"`
	AssetType string         `gorm:"column:asset_type;index:idx_asset_type" json:"asset_type,omitempty"`
	// StyleID is the owning product style for product asset types.
	StyleID     string `gorm:"column:style_id;index:idx_asset_style" json:"style_id,omitempty"`
	ColorKey    string `gorm:"column:color_key" json:"color_key,omitempty"`
	FileName    string `gorm:"column:file_name" json:"file_name,omitempty"`
	ContentType string `gorm:"column:content_type" json:"content_type,omitempty"`
	FileSize    int64  `gorm:"column:file_size" json:"file_size,omitempty"`
	Platform    string `gorm:"column:platform;index:idx_asset_platform" json:"platform,omitempty"`
	Path        string `gorm:"column:path;type:text" json:"path,omitempty"`
	URL         string `gorm:"column:url;type:text" json:"url,omitempty"`
	// URLMedium and URLSmall are populated for product main images only.
	URLMedium string `gorm:"column:url_medium;type:text" json:"url_medium,omitempty"`
	URLSmall  string `gorm:"column:url_small;type:text" json:"url_small,omitempty"`
}

// TableName overrides gorm to use asset table.
func (Asset) TableName() string {
	return "asset"
}
