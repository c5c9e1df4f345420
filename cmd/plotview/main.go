// Command plotview shows function graphs in an interactive window.
//
// Mouse:
//
//	left drag          pan
//	right drag         zoom to the selected rectangle
//	wheel              zoom at the pointer (Shift: fast, Ctrl: X only, Alt: Y only)
//
// Keys:
//
//	arrows             pan
//	+ / -              zoom at the center
//	[ / ]              move the X linear zone edge one decade (Shift: Y)
//	, / .              move the X log zone edge one decade (Shift: Y)
//	D                  make the current view the default
//	R, Home            return to the default view
//	Esc, Q             quit
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/plot"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML config file")
		graphs  = flag.String("graphs", "", "comma separated builtin functions: "+strings.Join(plot.BuiltinNames(), ","))
		light   = flag.Bool("light", false, "use the light theme")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := plot.DefaultConfig()
	if *config != "" {
		f, err := os.Open(*config) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			log.Fatalf("Failed to open config: %v", err)
		}
		cfg, err = plot.LoadConfig(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *graphs != "" {
		cfg.Graphs = strings.Split(*graphs, ",")
	}
	if len(cfg.Graphs) == 0 {
		cfg.Graphs = []string{"sin", "square", "reciprocal"}
	}
	if *light {
		cfg.Theme = plot.LightTheme()
	}

	p, err := plot.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create plot: %v", err)
	}

	ebiten.SetWindowTitle("plot")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	plot.Logger().Info("window started", "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(newViewer(p)); err != nil {
		log.Fatal(err)
	}
}
