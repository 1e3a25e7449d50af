package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownscaleWideImage(t *testing.T) {
	data := encodePNG(t, 1280, 960)

	out, err := Downscale(data, 640)
	require.NoError(t, err)

	resized, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, resized.Bounds().Dx())
	assert.Equal(t, 480, resized.Bounds().Dy(), "aspect ratio preserved")
}

func TestDownscaleSmallImagePassesThrough(t *testing.T) {
	data := encodePNG(t, 320, 240)

	out, err := Downscale(data, 640)
	require.NoError(t, err)
	assert.Equal(t, data, out, "images within bounds are not re-encoded")
}

func TestDownscaleRejectsGarbage(t *testing.T) {
	_, err := Downscale([]byte("not an image"), 640)
	assert.Error(t, err)
}
