//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"planetgen/internal/app"
	"planetgen/internal/planet"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	p, err := planet.Generate(cfg.Planet)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(p, cfg)
	size := p.Size()

	ebiten.SetWindowTitle("planetgen - " + p.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
