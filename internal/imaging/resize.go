// Package imaging prepares uploads for oracle submission. Vision APIs bill
// by pixel and gain nothing from full-resolution uploads, so wide images are
// downscaled first.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxWidth matches what the vision providers comfortably handle.
const DefaultMaxWidth = 640

// JPEG re-encode quality for downscaled submissions.
const encodeQuality = 85

// Downscale re-encodes an image to at most maxWidth pixels wide, preserving
// aspect ratio. Images already within bounds pass through untouched.
func Downscale(data []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return data, nil
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: encodeQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
