// Command okx3d reads X3D files and reports the Geometry2D
// elements they contain.
//
//	okx3d [-segments n] [-strict] [-svg out.svg [-scale s]] scene.x3d...
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/benoitkugler/okx3d/internal/config"
	"github.com/benoitkugler/okx3d/x3dgeom"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	segments := flag.Int("segments", cfg.ArcSegments, "number of segments approximating arcs and circles")
	strict := flag.Bool("strict", false, "fail on unsupported nodes")
	svgOut := flag.String("svg", "", "write the outlines of the (single) input file to this SVG file")
	scale := flag.Float64("scale", 100, "scale applied to the coordinates in the SVG output")
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts, err := importOptions(cfg, logger, *segments, *strict)
	if err != nil {
		slog.Error("invalid options", "error", err)
		os.Exit(2)
	}

	if flag.NArg() == 0 || (*svgOut != "" && flag.NArg() != 1) {
		flag.Usage()
		os.Exit(2)
	}

	for _, file := range flag.Args() {
		if err := run(file, *svgOut, *scale, opts); err != nil {
			slog.Error("read scene", "file", file, "error", err)
			os.Exit(1)
		}
	}
}

// importOptions applies the command line flags over the configuration.
func importOptions(cfg *config.Config, logger *slog.Logger, segments int, strict bool) (x3dgeom.Options, error) {
	if segments < 1 {
		return x3dgeom.Options{}, fmt.Errorf("-segments must be at least 1, got %d", segments)
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return x3dgeom.Options{}, err
	}
	opts.Segments = segments
	if strict {
		opts.ErrorMode = x3dgeom.StrictErrorMode
	}
	return opts, nil
}

func run(file, svgOut string, scale float64, opts x3dgeom.Options) error {
	scene, err := x3dgeom.ReadScene(file, opts)
	if err != nil {
		return err
	}
	for _, e := range scene.Geometry() {
		slog.Info("geometry", "file", file, "kind", e.Kind, "def", e.ID,
			"vertices", len(e.Vertices), "primitives", e.Primitives(), "arity", e.Arity, "solid", e.Solid)
	}
	if svgOut == "" {
		return nil
	}

	f, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	if err = scene.WriteSVG(f, scale); err != nil {
		f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}
