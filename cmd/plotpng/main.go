// Command plotpng renders function graphs to a PNG file.
//
// Usage:
//
//	plotpng -graphs sin,square -xmin -10 -xmax 10 -output plot.png
//	plotpng -config plot.yaml -output plot.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
)

func main() {
	cfg := plot.DefaultConfig()
	var (
		config  = flag.String("config", "", "YAML config file; flags override it")
		width   = flag.Int("width", 0, "image width (default from config)")
		height  = flag.Int("height", 0, "image height (default from config)")
		graphs  = flag.String("graphs", "", "comma separated builtin functions: "+strings.Join(plot.BuiltinNames(), ","))
		light   = flag.Bool("light", false, "use the light theme")
		output  = flag.String("output", "plot.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	var xm, ym axis.Measures
	valueFlag(&xm.MinValue, "xmin", "smallest visible x")
	valueFlag(&xm.MaxValue, "xmax", "largest visible x")
	valueFlag(&ym.MinValue, "ymin", "smallest visible y")
	valueFlag(&ym.MaxValue, "ymax", "largest visible y")
	logFlag(&xm.MinLog, "xminlog", "x linear zone edge exponent")
	logFlag(&xm.MaxLog, "xmaxlog", "x log zone edge exponent")
	logFlag(&ym.MinLog, "yminlog", "y linear zone edge exponent")
	logFlag(&ym.MaxLog, "ymaxlog", "y log zone edge exponent")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *config != "" {
		var err error
		if cfg, err = loadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *graphs != "" {
		cfg.Graphs = strings.Split(*graphs, ",")
	}
	if *light {
		cfg.Theme = plot.LightTheme()
	}
	cfg.X = cfg.X.Override(xm)
	cfg.Y = cfg.Y.Override(ym)

	p, err := plot.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create plot: %v", err)
	}
	if err := savePNG(p, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	plot.Logger().Info("plot saved", "file", *output, "width", cfg.Width, "height", cfg.Height)
}

func loadConfig(path string) (plot.Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return plot.Config{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	return plot.LoadConfig(f)
}

func savePNG(p *plot.Plot, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// valueFlag registers a float flag that accepts inf and -inf and leaves
// *dst nil when absent.
func valueFlag(dst **float64, name, usage string) {
	flag.Func(name, usage, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", s)
		}
		*dst = &v
		return nil
	})
}

func logFlag(dst **int, name, usage string) {
	flag.Func(name, usage, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid exponent %q", s)
		}
		*dst = &v
		return nil
	})
}
