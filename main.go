// Command goprogressivetracer renders one of a fixed catalogue of scenes
// with a Monte-Carlo path tracer and writes the result to an image file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dfraymond/goprogressivetracer/pkg/config"
	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/renderer"
	"github.com/dfraymond/goprogressivetracer/pkg/scene"
)

var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "goprogressivetracer",
		Short: "Offline Monte-Carlo path tracer",
		Long: "Renders a named scene from the built-in catalogue (" +
			joinNames() + ") to an image file, extension determines encoder.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output image path; extension determines encoder")
	flags.StringVar((*string)(&cfg.Renderer), "renderer", string(cfg.Renderer), "sequential | parallel-workpool | parallel-channels")
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "named scene: "+joinNames())
	flags.BoolVar(&cfg.Moving, "moving", cfg.Moving, "enable a non-degenerate shutter interval [0,1] for motion blur")
	flags.IntVar(&cfg.Width, "width", 0, "override the scene's default image width")
	flags.IntVar(&cfg.Height, "height", 0, "override the scene's default image height")
	flags.IntVar(&cfg.SamplesPerPixel, "samples-per-pixel", 0, "override the scene's default sample count")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum recursion depth of the radiance estimator")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base seed for per-pixel deterministic sampling")

	return cmd
}

func joinNames() string {
	names := scene.Names()
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("invalid configuration")
		return err
	}

	log.WithFields(logrus.Fields{
		"scene":    cfg.Scene,
		"renderer": cfg.Renderer,
		"moving":   cfg.Moving,
	}).Info("building scene")

	buildRng := core.NewRng(cfg.Seed)
	sc, err := scene.Build(cfg.Scene, buildRng, cfg.Moving)
	if err != nil {
		log.WithError(err).Error("scene build failed")
		return err
	}
	sc.Config = cfg.ApplyOverrides(sc.Config)

	log.WithFields(logrus.Fields{
		"width":             sc.Config.Width,
		"height":            sc.Config.Height,
		"samples_per_pixel": sc.Config.SamplesPerPixel,
		"max_depth":         sc.Config.MaxDepth,
	}).Info("starting render")

	total := sc.Config.Width * sc.Config.Height
	bar := pb.StartNew(total)
	progress := func(completed int) { bar.SetCurrent(int64(completed)) }

	start := time.Now()
	buf, err := renderScene(ctx, &cfg, sc, progress)
	bar.Finish()
	if err != nil {
		log.WithError(err).Error("render failed")
		return err
	}
	elapsed := time.Since(start)

	log.WithField("elapsed", elapsed).Info("render complete, encoding output")

	if err := writeOutput(cfg.Output, buf); err != nil {
		log.WithError(err).Error("failed to write output image")
		return err
	}

	log.WithField("output", cfg.Output).Info("done")
	return nil
}

func renderScene(ctx context.Context, cfg *config.Config, sc *scene.Scene, progress renderer.Progress) (*renderer.Buffer, error) {
	switch cfg.Renderer {
	case config.Sequential:
		return renderer.RenderSequential(sc, cfg.Seed, progress), nil
	case config.ParallelChannels:
		return renderer.RenderChannels(ctx, sc, cfg.Seed, progress)
	default:
		return renderer.RenderWorkpool(ctx, sc, cfg.Seed, progress)
	}
}

func writeOutput(path string, buf *renderer.Buffer) error {
	ext := renderer.ExtensionOf(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	if err := renderer.Encode(f, buf, ext); err != nil {
		return fmt.Errorf("encode output file %q: %w", path, err)
	}
	return nil
}
