//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"planetgen/internal/calibrate"
	"planetgen/internal/core"
	"planetgen/internal/habitability"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type temperatureSource interface {
	Temperature(x, y int) float64
}

// Overlay draws optional inspection visuals on top of the active layer: the
// calibration reference band and a temperature probe under the cursor.
type Overlay struct {
	src       core.Source
	scale     int
	showBand  bool
	showProbe bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src core.Source, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, showBand: true, showProbe: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay elements from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBand = !o.showBand
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.showProbe = !o.showProbe
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showBand {
		o.drawBand(screen, size, scale)
	}
	if o.showProbe {
		o.drawProbe(screen, size, scale)
	}
}

func (o *Overlay) drawBand(screen *ebiten.Image, size core.Size, scale int) {
	lo, hi := calibrate.Band(size.W)
	s := float64(scale)
	x1, y1 := float64(lo)*s, float64(lo)*s
	x2, y2 := float64(hi)*s, float64(hi)*s
	col := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	thickness := math.Max(1, s*0.75)
	o.drawLine(screen, x1, y1, x2, y1, thickness, col)
	o.drawLine(screen, x2, y1, x2, y2, thickness, col)
	o.drawLine(screen, x2, y2, x1, y2, thickness, col)
	o.drawLine(screen, x1, y2, x1, y1, thickness, col)
}

func (o *Overlay) drawProbe(screen *ebiten.Image, size core.Size, scale int) {
	mx, my := ebiten.CursorPosition()
	x, y := mx/scale, my/scale
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return
	}
	var kelvin float64
	if ts, ok := o.src.(temperatureSource); ok {
		kelvin = ts.Temperature(x, y)
	} else {
		kelvin = o.src.Heat().At(x, y) * o.src.Rate()
	}
	label := fmt.Sprintf("(%d,%d) elev %d  %.1f K  %s", x, y, o.src.Elevation().At(x, y), kelvin, habitability.Classify(kelvin))
	bounds := text.BoundString(basicfont.Face7x13, label)
	o.drawRect(screen, 4, 4, float64(bounds.Dx()+8), float64(bounds.Dy()+8), color.RGBA{R: 0, G: 0, B: 0, A: 160})
	text.Draw(screen, label, basicfont.Face7x13, 8, 8+bounds.Dy(), color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
