//go:build ebiten

package app

import (
	"fmt"
	"path/filepath"

	"planetgen/internal/core"
	"planetgen/internal/monitoring"
	"planetgen/internal/planet"
	"planetgen/internal/render"
	"planetgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var layerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// Game adapts a generated planet to the ebiten.Game interface.
type Game struct {
	planet  *planet.Planet
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	layer   string
	scale   int
	panel   int
	shotDir string
	dirty   bool
}

// New constructs a Game showing p.
func New(p *planet.Planet, cfg *Config) *Game {
	size := p.Size()
	g := &Game{
		planet:  p,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(p, cfg.Scale),
		layer:   cfg.Layer,
		scale:   cfg.Scale,
		panel:   cfg.PanelWidth,
		shotDir: cfg.ShotDir,
		dirty:   true,
	}
	if cfg.PanelWidth > 0 {
		g.hud = ui.NewHUD(p, cfg.PanelWidth)
	}
	return g
}

// SetLayer switches the displayed layer. Unknown names are ignored.
func (g *Game) SetLayer(name string) {
	if _, ok := core.Layers()[name]; !ok || name == g.layer {
		return
	}
	g.layer = name
	g.dirty = true
}

// Update handles per-frame input. Nothing is simulated; the planet only
// changes when the HUD moves the rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range layerKeys {
		if inpututil.IsKeyJustPressed(key) {
			if name, ok := LayerForKey(i + 1); ok {
				g.SetLayer(name)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.snapshot()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.mapWidth())
		if g.hud.Changed && rateDependent(g.layer) {
			g.dirty = true
		}
	}
	return nil
}

// Draw renders the active layer, the overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.painter.Upload(core.Layers()[g.layer](g.planet))
		g.dirty = false
	}
	g.painter.Blit(screen, float64(g.scale))
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.mapWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.planet.Size()
	return g.mapWidth() + g.panel, s.H * g.scale
}

func (g *Game) mapWidth() int { return g.planet.Size().W * g.scale }

func (g *Game) snapshot() {
	size := g.planet.Size()
	name := fmt.Sprintf("%s-%s.png", g.planet.Name(), g.layer)
	path := filepath.Join(g.shotDir, name)
	if err := render.WritePNG(path, core.Layers()[g.layer](g.planet), size.W, size.H); err != nil {
		monitoring.Logf("snapshot failed: %v", err)
		return
	}
	monitoring.Logf("wrote %s", path)
}
