// Package imagecodec wraps image decode / fit-resize / JPEG re-encode for
// the upload pipeline.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FitSpec describes one resized JPEG rendition: the bounding box the image
// must fit within (without enlargement) and the JPEG quality to encode at.
type FitSpec struct {
	MaxWidth  int
	MaxHeight int
	Quality   int // 1-100
}

// FitJPEG decodes src, scales it down to fit within the spec bounding box
// preserving aspect ratio (images already inside the box are left at their
// original size), and re-encodes as JPEG at the requested quality.
func FitJPEG(src []byte, spec FitSpec) ([]byte, error) {
	img, err := decode(src)
	if err != nil {
		return nil, err
	}

	fitted := imaging.Fit(img, spec.MaxWidth, spec.MaxHeight, imaging.Lanczos)
	return encodeJPEG(fitted, spec.Quality)
}

// ReencodeJPEG decodes src and re-encodes it as JPEG at the requested
// quality without resizing.
func ReencodeJPEG(src []byte, quality int) ([]byte, error) {
	img, err := decode(src)
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img, quality)
}

// Bounds reports the pixel dimensions of an encoded image.
func Bounds(src []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func decode(src []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
