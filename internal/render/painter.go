//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads RGBA layer buffers into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a field of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with buf. Buffers of the wrong size are
// ignored.
func (gp *GridPainter) Upload(buf []byte) {
	if len(buf) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(buf)
}

// Blit draws the current image scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)
}
