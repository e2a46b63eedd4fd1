//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/store"
	"sparse-life/internal/ui"
	grid "sparse-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	field, _, _ := ui.Layout(cfg.Bounds(), app.HUDWidth, ui.DefaultBarHeight)
	sc, err := cfg.Session(field, store.NewDir(cfg.Saves), log.Default())
	if err != nil {
		log.Fatal(err)
	}
	session := core.NewSession(sc)
	game := app.New(session, app.HUDWidth, ui.DefaultBarHeight)

	ebiten.SetWindowTitle("sparse-life - " + grid.RuleName(sc.Rule))
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
