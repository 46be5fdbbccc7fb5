package renderer

import (
	"context"
	"image"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// ErrTypeInvalidConfig is the error type of render configurations that
// cannot be rendered.
const ErrTypeInvalidConfig = "invalid_config"

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize       int    // Size of each tile (64x64 recommended)
	InitialSamples int    // Samples for first pass (1 recommended)
	Passes         int    // Maximum number of passes
	NumWorkers     int    // Number of parallel workers (0 = use CPU count)
	Seed           int64  // Base seed of the per-tile samplers
	RenderID       string // Tag attached to log entries, optional
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:       64,
		InitialSamples: 1,
		Passes:         7,
		NumWorkers:     0,
		Seed:           42,
	}
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber  int
	TotalPasses int
	Image       *image.RGBA
	Stats       RenderStats
	Duration    time.Duration
	IsLast      bool
}

// ProgressiveRaytracer manages progressive rendering with multiple passes
type ProgressiveRaytracer struct {
	width, height int
	camera        *Camera
	raytracer     *Raytracer
	tileRenderer  *TileRenderer
	sampling      SamplingConfig
	config        ProgressiveConfig
	tiles         []*Tile
	pixelStats    [][]PixelStats // Shared pixel statistics array (global image coordinates)
}

// NewProgressiveRaytracer creates a progressive raytracer for a world seen
// through a camera.
func NewProgressiveRaytracer(
	world core.Hittable,
	background core.Vec3,
	cameraConfig CameraConfig,
	sampling SamplingConfig,
	config ProgressiveConfig,
) (*ProgressiveRaytracer, error) {
	if err := validate(world, cameraConfig, sampling, config); err != nil {
		return nil, err
	}

	config.InitialSamples = min(config.InitialSamples, sampling.SamplesPerPixel)
	config.Passes = min(config.Passes, sampling.SamplesPerPixel)

	camera := NewCamera(cameraConfig)
	raytracer := NewRaytracer(world, background)
	width, height := camera.Width(), camera.Height()

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	return &ProgressiveRaytracer{
		width:        width,
		height:       height,
		camera:       camera,
		raytracer:    raytracer,
		tileRenderer: NewTileRenderer(camera, raytracer, sampling.MaxDepth),
		sampling:     sampling,
		config:       config,
		tiles:        NewTileGrid(width, height, config.TileSize, config.Seed),
		pixelStats:   pixelStats,
	}, nil
}

func validate(world core.Hittable, cameraConfig CameraConfig, sampling SamplingConfig, config ProgressiveConfig) error {
	switch {
	case world == nil:
		return errors.New("world is nil").WithType(ErrTypeInvalidConfig)
	case cameraConfig.Width < 1:
		return errors.New("image width must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("width", cameraConfig.Width)
	case !(cameraConfig.AspectRatio > 0):
		return errors.New("aspect ratio must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("aspect_ratio", cameraConfig.AspectRatio)
	case sampling.SamplesPerPixel < 1:
		return errors.New("samples per pixel must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("samples", sampling.SamplesPerPixel)
	case sampling.MaxDepth < 1:
		return errors.New("max depth must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("depth", sampling.MaxDepth)
	case config.Passes < 1:
		return errors.New("passes must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("passes", config.Passes)
	case config.InitialSamples < 1:
		return errors.New("initial samples must be positive").
			WithType(ErrTypeInvalidConfig).
			WithTag("initial_samples", config.InitialSamples)
	}
	return nil
}

// Width returns the image width in pixels
func (pr *ProgressiveRaytracer) Width() int {
	return pr.width
}

// Height returns the image height in pixels
func (pr *ProgressiveRaytracer) Height() int {
	return pr.height
}

// Passes returns the number of passes a full render takes
func (pr *ProgressiveRaytracer) Passes() int {
	return pr.config.Passes
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	maxSamples := pr.sampling.SamplesPerPixel

	// Special case: if only 1 pass, use all samples
	if pr.config.Passes == 1 {
		return maxSamples
	}

	// For multiple passes: first pass is quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// For the final pass, use all remaining samples
	if passNumber >= pr.config.Passes {
		return maxSamples
	}

	// Divide remaining samples evenly across remaining passes
	samplesPerPass := (maxSamples - pr.config.InitialSamples) / (pr.config.Passes - 1)
	return min(maxSamples, pr.config.InitialSamples+(passNumber-1)*samplesPerPass)
}

// RenderProgressive renders every pass, calling callback with the image
// accumulated so far after each one. Rendering stops with ctx's error when
// ctx is done and with the callback's error when it returns one.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, callback func(PassResult) error) error {
	activeRenders.Inc()
	defer activeRenders.Dec()

	pool := NewWorkerPool(ctx, pr.tileRenderer, len(pr.tiles), pr.config.NumWorkers)
	pool.Start()
	defer pool.Stop()

	log := logs.WithTag("render_id", pr.config.RenderID).
		WithTag("width", pr.width).
		WithTag("height", pr.height)

	log.WithTag("passes", pr.config.Passes).
		WithTag("workers", pool.GetNumWorkers()).
		WithTag("tiles", len(pr.tiles)).
		Debug("starting progressive render")

	for pass := 1; pass <= pr.config.Passes; pass++ {
		if err := ctx.Err(); err != nil {
			log.WithTag("pass", pass).Info("render cancelled")
			return err
		}

		start := time.Now()
		targetSamples := pr.getSamplesForPass(pass)

		img, stats, err := pr.renderPass(pool, pass, targetSamples)
		if err != nil {
			instrumentRenderError(err)
			return err
		}
		instrumentPass(start)

		result := PassResult{
			PassNumber:  pass,
			TotalPasses: pr.config.Passes,
			Image:       img,
			Stats:       stats,
			Duration:    time.Since(start),
			IsLast:      pass == pr.config.Passes,
		}

		log.WithTag("pass", pass).
			WithTag("samples", targetSamples).
			WithTag("duration", result.Duration.String()).
			Debug("pass completed")

		if callback == nil {
			continue
		}
		if err := callback(result); err != nil {
			err = errors.New("pass callback failed").
				WithTag("pass", pass).
				Wrap(err)
			instrumentRenderError(err)
			return err
		}
	}

	return nil
}

// Render runs every pass and returns the final image
func (pr *ProgressiveRaytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	var last PassResult
	err := pr.RenderProgressive(ctx, func(result PassResult) error {
		last = result
		return nil
	})
	return last.Image, last.Stats, err
}

func (pr *ProgressiveRaytracer) renderPass(pool *WorkerPool, passNumber, targetSamples int) (*image.RGBA, RenderStats, error) {
	for i, tile := range pr.tiles {
		pool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        i,
			PixelStats:    pr.pixelStats,
		})
	}

	// Every submitted task produces a result, so the pool is idle on return
	var firstErr error
	for range pr.tiles {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, errors.New("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}

		pr.tiles[result.TaskID].PassesCompleted++
		instrumentSamples(result.SamplesTaken)
	}
	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// assembleCurrentImage creates an image from the current state of the shared pixel stats
// and calculates render statistics in a single pass
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))
	stats := newRenderStats(pr.width*pr.height, targetSamples)

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, Vec3ToColor(pixel.GetColor()))
			stats.addPixel(pixel.SampleCount)
		}
	}

	stats.finalize()
	return img, stats
}
