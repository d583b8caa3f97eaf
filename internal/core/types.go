package core

import "sort"

// Size describes the dimensions of a field.
type Size struct {
	W int
	H int
}

// Source is the read-only view of a generated planet that layer painters
// consume. The calibration rate travels with the grids so every consumer
// classifies against the same value.
type Source interface {
	Size() Size
	Elevation() *Grid[int]
	Heat() *Grid[float64]
	Rate() float64
}

// Painter renders a Source into an RGBA byte buffer (4 bytes per cell).
type Painter func(src Source) []byte

var layers = map[string]Painter{}

// RegisterLayer adds a painter under the provided layer name.
func RegisterLayer(name string, p Painter) {
	if name == "" || p == nil {
		return
	}
	layers[name] = p
}

// Layers exposes the registry of available layer painters.
func Layers() map[string]Painter {
	return layers
}

// LayerNames returns the registered layer names in sorted order.
func LayerNames() []string {
	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
