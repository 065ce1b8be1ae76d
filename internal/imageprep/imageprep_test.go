package imageprep

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 128, B: 64, A: 255})
		}
	}
	return img
}

func TestEnhanceDownscalesWideImages(t *testing.T) {
	p := NewPreprocessor(1200, 95, nil)

	out := p.Enhance(testImage(2400, 600))

	assert.Equal(t, 1200, out.Bounds().Dx())
	// Aspect ratio preserved.
	assert.Equal(t, 300, out.Bounds().Dy())
}

func TestEnhanceNeverUpscales(t *testing.T) {
	p := NewPreprocessor(1200, 95, nil)

	out := p.Enhance(testImage(400, 300))

	assert.Equal(t, 400, out.Bounds().Dx())
	assert.Equal(t, 300, out.Bounds().Dy())
}

func TestOptimizeFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "receipt.jpg")

	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, testImage(100, 80), nil))
	require.NoError(t, f.Close())

	p := NewPreprocessor(1200, 95, nil)
	outPath, cleanup, err := p.OptimizeFile(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "optimized_receipt.jpg"), outPath)
	_, err = os.Stat(outPath)
	assert.NoError(t, err)

	cleanup()
	_, err = os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestOptimizeFileMissingSource(t *testing.T) {
	p := NewPreprocessor(1200, 95, nil)

	_, _, err := p.OptimizeFile(filepath.Join(t.TempDir(), "missing.jpg"))

	require.Error(t, err)
	var ipErr *parsererror.ImageProcessingError
	assert.ErrorAs(t, err, &ipErr)
}
