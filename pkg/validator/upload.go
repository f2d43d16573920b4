package validator

import (
	"errors"
	"net/http"
	"strings"
)

// Default upload constraints
const (
	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB
)

// DefaultAllowedMimeTypes contains the default whitelist of allowed MIME
// types for uploads. The service stores images only.
var DefaultAllowedMimeTypes = map[string]bool{
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/svg+xml":            true,
	"image/bmp":                true,
	"image/x-ms-bmp":           true,
	"image/tiff":               true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
	"image/avif":               true,
}

// UploadConfig defines constraints for file uploads.
type UploadConfig struct {
	MaxFileSize      int64
	AllowedMimeTypes map[string]bool
}

// DefaultUploadConfig returns the default upload configuration.
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:      DefaultMaxUploadSize,
		AllowedMimeTypes: DefaultAllowedMimeTypes,
	}
}

// FromLimits builds an UploadConfig from a size limit and a MIME whitelist,
// falling back to defaults where either is unset.
func FromLimits(maxSize int64, allowedTypes []string) *UploadConfig {
	cfg := DefaultUploadConfig()
	if maxSize > 0 {
		cfg.MaxFileSize = maxSize
	}
	if len(allowedTypes) > 0 {
		allowed := make(map[string]bool, len(allowedTypes))
		for _, t := range allowedTypes {
			allowed[strings.ToLower(strings.TrimSpace(t))] = true
		}
		cfg.AllowedMimeTypes = allowed
	}
	return cfg
}

// ValidateFileSize checks if the file size is within the allowed limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return errors.New("file is empty")
	}
	if size > c.MaxFileSize {
		return errors.New("file too large")
	}
	return nil
}

// ValidateMimeType checks if the MIME type is in the allowed whitelist.
func (c *UploadConfig) ValidateMimeType(mimeType string) error {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == "" {
		return errors.New("missing content type")
	}
	// Handle MIME types with parameters (e.g., "image/svg+xml; charset=utf-8")
	if idx := strings.Index(normalized, ";"); idx > 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	if !c.AllowedMimeTypes[normalized] {
		return errors.New("unsupported file type")
	}
	return nil
}

// DetectAndValidateMimeType detects the MIME type from file content and
// validates it against the whitelist.
func (c *UploadConfig) DetectAndValidateMimeType(data []byte, declaredType string) (string, error) {
	detectedType := http.DetectContentType(data)

	if idx := strings.Index(detectedType, ";"); idx > 0 {
		detectedType = strings.TrimSpace(detectedType[:idx])
	}

	// http.DetectContentType cannot recognise SVG; trust the declared type
	// when content sniffing lands on a generic result.
	if detectedType == "text/plain" || detectedType == "application/octet-stream" {
		if declaredType != "" && c.ValidateMimeType(declaredType) == nil {
			return declaredType, nil
		}
	}

	if err := c.ValidateMimeType(detectedType); err != nil {
		return detectedType, err
	}

	return detectedType, nil
}

// Validate performs full validation on an upload.
func (c *UploadConfig) Validate(size int64, mimeType string, data []byte) error {
	if err := c.ValidateFileSize(size); err != nil {
		return err
	}
	if _, err := c.DetectAndValidateMimeType(data, mimeType); err != nil {
		return err
	}
	return nil
}
