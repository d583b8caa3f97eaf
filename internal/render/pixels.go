// Package render turns planet grids into RGBA pixel buffers and images.
package render

import (
	"image/color"

	"planetgen/internal/core"
	"planetgen/internal/gridstat"
	"planetgen/internal/habitability"
)

// ClassPalette maps each habitability class to its pixel colour: red for too
// hot, green for habitable, blue for too cold. Uncategorized cells stay black.
var ClassPalette = buildClassPalette()

func buildClassPalette() []color.RGBA {
	palette := make([]color.RGBA, len(habitability.Classes))
	palette[habitability.Uncategorized] = color.RGBA{A: 255}
	palette[habitability.TooHot] = color.RGBA{R: 255, A: 255}
	palette[habitability.Habitable] = color.RGBA{G: 255, A: 255}
	palette[habitability.TooCold] = color.RGBA{B: 255, A: 255}
	return palette
}

// fillGrayRGBA writes each value, clamped to [0, 255], into the three colour
// channels of buf with full opacity.
func fillGrayRGBA(buf []byte, values []int) {
	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		base := i * 4
		buf[base+0] = uint8(v)
		buf[base+1] = uint8(v)
		buf[base+2] = uint8(v)
		buf[base+3] = 255
	}
}

// fillPaletteRGBA converts class values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []habitability.Class, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ElevationRGBA renders elevation as opaque greyscale.
func ElevationRGBA(elevation *core.Grid[int]) []byte {
	buf := make([]byte, 4*len(elevation.Cells()))
	fillGrayRGBA(buf, elevation.Cells())
	return buf
}

// ClassificationRGBA renders the habitability of heat·rate per cell.
func ClassificationRGBA(heat *core.Grid[float64], rate float64) []byte {
	cells := make([]habitability.Class, len(heat.Cells()))
	for i, h := range heat.Cells() {
		cells[i] = habitability.Classify(h * rate)
	}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, ClassPalette)
	return buf
}

// HeatRGBA renders the raw heat field stretched to greyscale between its
// minimum and maximum.
func HeatRGBA(heat *core.Grid[float64]) []byte {
	cells := heat.Cells()
	levels := make([]int, len(cells))
	if len(cells) > 0 {
		lo := gridstat.Min(heat)
		span := gridstat.Range(heat)
		if span > 0 {
			for i, h := range cells {
				levels[i] = int((h - lo) / span * 255)
			}
		}
	}
	buf := make([]byte, 4*len(cells))
	fillGrayRGBA(buf, levels)
	return buf
}

func init() {
	core.RegisterLayer("elevation", func(src core.Source) []byte {
		return ElevationRGBA(src.Elevation())
	})
	core.RegisterLayer("heat", func(src core.Source) []byte {
		return HeatRGBA(src.Heat())
	})
	core.RegisterLayer("classification", func(src core.Source) []byte {
		return ClassificationRGBA(src.Heat(), src.Rate())
	})
}
