package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Image wraps an RGBA buffer of a w×h field without copying it.
func Image(buf []byte, w, h int) (*image.RGBA, error) {
	if len(buf) != 4*w*h {
		return nil, fmt.Errorf("render: buffer has %d bytes, want %d for %dx%d", len(buf), 4*w*h, w, h)
	}
	return &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}, nil
}

// WritePNG encodes an RGBA buffer of a w×h field to path.
func WritePNG(path string, buf []byte, w, h int) error {
	img, err := Image(buf, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
