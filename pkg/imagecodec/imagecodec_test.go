package imagecodec

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil)
	require.NoError(t, err)
	return buf.Bytes()
}

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)))
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFitJPEG(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		spec       FitSpec
		wantW      int
		wantH      int
	}{
		{
			name: "should scale down landscape preserving aspect ratio",
			srcW: 2400, srcH: 1600,
			spec:  FitSpec{MaxWidth: 1200, MaxHeight: 1200, Quality: 90},
			wantW: 1200, wantH: 800,
		},
		{
			name: "should scale down portrait preserving aspect ratio",
			srcW: 600, srcH: 1200,
			spec:  FitSpec{MaxWidth: 300, MaxHeight: 300, Quality: 85},
			wantW: 150, wantH: 300,
		},
		{
			name: "should not enlarge images already inside the box",
			srcW: 100, srcH: 80,
			spec:  FitSpec{MaxWidth: 1200, MaxHeight: 1200, Quality: 90},
			wantW: 100, wantH: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FitJPEG(encodeTestJPEG(t, tt.srcW, tt.srcH), tt.spec)
			require.NoError(t, err)

			w, h, err := Bounds(out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestFitJPEGConvertsPNG(t *testing.T) {
	out, err := FitJPEG(encodeTestPNG(t, 800, 800), FitSpec{MaxWidth: 600, MaxHeight: 600, Quality: 90})
	require.NoError(t, err)

	_, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestFitJPEGRejectsGarbage(t *testing.T) {
	_, err := FitJPEG([]byte("not an image"), FitSpec{MaxWidth: 100, MaxHeight: 100, Quality: 90})
	assert.Error(t, err)
}

func TestReencodeJPEGKeepsDimensions(t *testing.T) {
	out, err := ReencodeJPEG(encodeTestJPEG(t, 640, 480), 90)
	require.NoError(t, err)

	w, h, err := Bounds(out)
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestBounds(t *testing.T) {
	w, h, err := Bounds(encodeTestJPEG(t, 320, 200))
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	_, _, err = Bounds([]byte{0x00, 0x01})
	assert.Error(t, err)
}
