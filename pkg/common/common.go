package common

import (
	"path"
	"strings"
)

// CommonResponse is a lightweight response wrapper used by HTTP handlers.
type CommonResponse struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// ReturnOK creates a HTTP 200 response.
func (CommonResponse) ReturnOK() CommonResponse {
	return CommonResponse{Code: 200}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
	".ico":  true,
	".tif":  true,
	".tiff": true,
	".avif": true,
}

// IsImageExtension reports whether the file name carries a raster or vector
// image extension.
func IsImageExtension(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// FileExtension returns the lowercase extension of name without the dot,
// or "" when the name has none.
func FileExtension(name string) string {
	ext := strings.ToLower(path.Ext(name))
	return strings.TrimPrefix(ext, ".")
}
