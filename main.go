package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/pkg/output"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/scene"
	"github.com/segmentio/encoding/json"
)

// Keeps the config field names readable by the cli package under obfuscation.
var _ = reflect.TypeOf(config{})

type config struct {
	Scene      string `cli:""        env:"RAYTRACER_SCENE"       help:"Scene to render (see -list)."`
	Output     string `cli:""        env:"RAYTRACER_OUTPUT"      help:"Output file. Defaults to output/<scene>.<format>."`
	Format     string `cli:""        env:"RAYTRACER_FORMAT"      help:"Image format (png|jpeg|bmp|tiff|ppm). Inferred from the output extension when empty."`
	Width      int    `cli:""        env:"RAYTRACER_WIDTH"       help:"Image width in pixels; 0 keeps the scene default."`
	Samples    int    `cli:""        env:"RAYTRACER_SAMPLES"     help:"Samples per pixel; 0 keeps the scene default."`
	Depth      int    `cli:""        env:"RAYTRACER_DEPTH"       help:"Maximum ray bounces; 0 keeps the scene default."`
	Passes     int    `cli:""        env:"RAYTRACER_PASSES"      help:"Number of progressive passes."`
	Workers    int    `cli:""        env:"RAYTRACER_WORKERS"     help:"Parallel workers; 0 uses every CPU."`
	TileSize   int    `cli:",hidden" env:"RAYTRACER_TILE_SIZE"   help:"Tile edge in pixels."`
	Seed       int    `cli:""        env:"RAYTRACER_SEED"        help:"Seed of scene construction and sampling."`
	TextureDir string `cli:""        env:"RAYTRACER_TEXTURE_DIR" help:"Directory holding image textures."`
	LogLevel   string `cli:""        env:"RAYTRACER_LOG_LEVEL"   help:"Log level (debug|info|warning|error)."`
	LogIndent  bool   `cli:""        env:"RAYTRACER_LOG_INDENT"  help:"Indent logs."`
	List       bool   `cli:""        env:"-"                     help:"List the available scenes."`
	Help       bool   `cli:""        env:"-"                     help:"Show help."`
}

func defaultConfig() config {
	progressive := renderer.DefaultProgressiveConfig()
	opts := scene.DefaultOptions()

	return config{
		Scene:      "bouncing-spheres",
		Passes:     progressive.Passes,
		TileSize:   progressive.TileSize,
		Seed:       int(opts.Seed),
		TextureDir: opts.TextureDir,
		LogLevel:   logs.InfoLevel.String(),
	}
}

func main() {
	conf := defaultConfig()

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Renders a scene to an image file.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	if conf.List {
		for _, info := range scene.List() {
			fmt.Printf("%-18s %s\n", info.Name, info.Description)
		}
		return
	}

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if err := run(ctx, conf); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	switch {
	case conf.Scene == "":
		return errors.New("scene is empty").WithType(renderer.ErrTypeInvalidConfig)
	case conf.Width < 0:
		return errors.New("width can't be negative").
			WithType(renderer.ErrTypeInvalidConfig).
			WithTag("width", conf.Width)
	case conf.Samples < 0:
		return errors.New("samples can't be negative").
			WithType(renderer.ErrTypeInvalidConfig).
			WithTag("samples", conf.Samples)
	case conf.Depth < 0:
		return errors.New("depth can't be negative").
			WithType(renderer.ErrTypeInvalidConfig).
			WithTag("depth", conf.Depth)
	case conf.Passes < 1:
		return errors.New("passes must be positive").
			WithType(renderer.ErrTypeInvalidConfig).
			WithTag("passes", conf.Passes)
	case conf.Workers < 0:
		return errors.New("workers can't be negative").
			WithType(renderer.ErrTypeInvalidConfig).
			WithTag("workers", conf.Workers)
	}

	if conf.Format != "" {
		if _, err := output.ParseFormat(conf.Format); err != nil {
			return err
		}
	}
	return nil
}

// outputTarget resolves the output path and format from the config
func outputTarget(conf config) (string, output.Format, error) {
	path := conf.Output

	if conf.Format != "" {
		format, err := output.ParseFormat(conf.Format)
		if err != nil {
			return "", "", err
		}
		if path == "" {
			path = filepath.Join("output", conf.Scene+"."+string(format))
		}
		return path, format, nil
	}

	if path == "" {
		return filepath.Join("output", conf.Scene+".png"), output.PNG, nil
	}

	format, err := output.FormatFromPath(path)
	if err != nil {
		return "", "", err
	}
	return path, format, nil
}

// applyOverrides replaces the scene's defaults with the non-zero settings of conf
func applyOverrides(s *scene.Scene, conf config) {
	if conf.Width > 0 {
		s.Camera.Width = conf.Width
	}
	if conf.Samples > 0 {
		s.Sampling.SamplesPerPixel = conf.Samples
	}
	if conf.Depth > 0 {
		s.Sampling.MaxDepth = conf.Depth
	}
}

func run(ctx context.Context, conf config) error {
	path, format, err := outputTarget(conf)
	if err != nil {
		return err
	}

	start := time.Now()
	s, err := scene.Create(conf.Scene, scene.Options{
		Seed:       int64(conf.Seed),
		TextureDir: conf.TextureDir,
	})
	if err != nil {
		return err
	}
	applyOverrides(s, conf)

	log := logs.WithTag("scene", s.Name)
	if stats, ok := s.BVHStats(); ok {
		log = log.WithTag("bvh_nodes", stats.Nodes).
			WithTag("bvh_leaves", stats.Leaves).
			WithTag("bvh_depth", stats.MaxDepth)
	}
	log.WithTag("duration", time.Since(start).String()).Info("scene built")

	pr, err := renderer.NewProgressiveRaytracer(s.World, s.Background, s.Camera, s.Sampling, renderer.ProgressiveConfig{
		TileSize:       conf.TileSize,
		InitialSamples: 1,
		Passes:         conf.Passes,
		NumWorkers:     conf.Workers,
		Seed:           int64(conf.Seed),
		RenderID:       s.Name,
	})
	if err != nil {
		return err
	}

	logs.WithTag("scene", s.Name).
		WithTag("width", pr.Width()).
		WithTag("height", pr.Height()).
		WithTag("samples", s.Sampling.SamplesPerPixel).
		WithTag("depth", s.Sampling.MaxDepth).
		WithTag("passes", pr.Passes()).
		Info("starting render")

	var last renderer.PassResult
	err = pr.RenderProgressive(ctx, func(result renderer.PassResult) error {
		last = result
		logs.WithTag("pass", fmt.Sprintf("%d/%d", result.PassNumber, result.TotalPasses)).
			WithTag("samples", result.Stats.MaxSamplesUsed).
			WithTag("duration", result.Duration.String()).
			Info("pass completed")
		return nil
	})
	if err != nil {
		return errors.New("rendering failed").
			WithTag("scene", s.Name).
			Wrap(err)
	}

	if err := output.WriteFile(path, last.Image, format); err != nil {
		return err
	}

	logs.WithTag("path", path).
		WithTag("format", format).
		WithTag("average_samples", last.Stats.AverageSamples).
		WithTag("duration", time.Since(start).String()).
		Info("render saved")
	return nil
}
