package validator

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestValidateFileSize(t *testing.T) {
	cfg := FromLimits(100, nil)

	if err := cfg.ValidateFileSize(100); err != nil {
		t.Errorf("Expected size at limit to pass, got %v", err)
	}
	if err := cfg.ValidateFileSize(101); err == nil {
		t.Error("Expected size over limit to fail")
	}
	if err := cfg.ValidateFileSize(0); err == nil {
		t.Error("Expected zero size to fail")
	}
}

func TestValidateMimeType(t *testing.T) {
	cfg := DefaultUploadConfig()

	if err := cfg.ValidateMimeType("image/png"); err != nil {
		t.Errorf("Expected image/png to pass, got %v", err)
	}
	if err := cfg.ValidateMimeType("application/pdf"); err == nil {
		t.Error("Expected application/pdf to fail")
	}
	if err := cfg.ValidateMimeType("video/mp4"); err == nil {
		t.Error("Expected video/mp4 to fail")
	}
}

func TestDetectAndValidateMimeType(t *testing.T) {
	cfg := DefaultUploadConfig()

	t.Run("DetectsPNG", func(t *testing.T) {
		detected, err := cfg.DetectAndValidateMimeType(pngBytes(t), "")
		if err != nil {
			t.Fatalf("Expected PNG to pass, got %v", err)
		}
		if detected != "image/png" {
			t.Errorf("Expected image/png, got %q", detected)
		}
	})

	t.Run("RejectsText", func(t *testing.T) {
		if _, err := cfg.DetectAndValidateMimeType([]byte("plain text body"), ""); err == nil {
			t.Error("Expected plain text to fail")
		}
	})

	t.Run("TrustsDeclaredSVG", func(t *testing.T) {
		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
		detected, err := cfg.DetectAndValidateMimeType(svg, "image/svg+xml")
		if err != nil {
			t.Fatalf("Expected declared SVG to pass, got %v", err)
		}
		if detected != "image/svg+xml" {
			t.Errorf("Expected image/svg+xml, got %q", detected)
		}
	})

	t.Run("IgnoresDeclaredLieForBinary", func(t *testing.T) {
		if _, err := cfg.DetectAndValidateMimeType([]byte("%PDF-1.4 fake"), "image/png"); err == nil {
			t.Error("Expected PDF content to fail despite declared image type")
		}
	})
}

func TestFromLimits(t *testing.T) {
	cfg := FromLimits(0, nil)
	if cfg.MaxFileSize != DefaultMaxUploadSize {
		t.Errorf("Expected default max size, got %d", cfg.MaxFileSize)
	}

	cfg = FromLimits(2048, []string{"image/png", " Image/JPEG "})
	if cfg.MaxFileSize != 2048 {
		t.Errorf("Expected max size 2048, got %d", cfg.MaxFileSize)
	}
	if !cfg.AllowedMimeTypes["image/jpeg"] {
		t.Error("Expected normalised image/jpeg to be allowed")
	}
	if cfg.AllowedMimeTypes["image/gif"] {
		t.Error("Expected image/gif to be excluded by the explicit whitelist")
	}
}
