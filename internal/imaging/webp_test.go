package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebPKeepsSmallImages(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 320, 240))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestToWebPScalesDownLongEdge(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 3200, 1600))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, MaxLongEdge, img.Bounds().Dx())
	assert.Equal(t, MaxLongEdge/2, img.Bounds().Dy())
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP([]byte("definitely not an image"))
	assert.Error(t, err)
}
