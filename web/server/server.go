package server

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/go-tooling/pkg/metrics"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/scene"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"
)

const (
	ErrTypeBadRequest = "bad_request"

	defaultScene = "cornell-box"
	minWidth     = 16
	maxDepth     = 100
	maxPasses    = 100
)

// Options configures the web server.
type Options struct {
	TextureDir string // Directory holding image textures
	Seed       int64  // Seed of scene construction and sampling
	Workers    int    // Render workers per request; 0 uses every CPU
	TileSize   int    // Tile edge in pixels; 0 keeps the renderer default
	MaxWidth   int    // Largest accepted image width
	MaxSamples int    // Largest accepted samples per pixel
}

// DefaultOptions returns the options used by the web binary.
func DefaultOptions() Options {
	opts := scene.DefaultOptions()
	return Options{
		TextureDir: opts.TextureDir,
		Seed:       opts.Seed,
		MaxWidth:   2000,
		MaxSamples: 10000,
	}
}

// Server serves progressive renders of the registered scenes.
type Server struct {
	opts Options

	scenesOnce sync.Once
	scenes     []SceneSummary
	scenesErr  error
}

// New creates a server. Zero limits fall back to DefaultOptions.
func New(opts Options) *Server {
	defaults := DefaultOptions()
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = defaults.MaxWidth
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = defaults.MaxSamples
	}
	return &Server{opts: opts}
}

// Handler returns the public routes wrapped with request metrics.
func (s *Server) Handler() http.Handler {
	var mux http.ServeMux
	mux.Handle("/api/scenes", HandleWithCORS(http.HandlerFunc(s.handleScenes)))
	mux.Handle("/api/render", HandleWithCORS(http.HandlerFunc(s.handleRender)))
	mux.Handle("/api/inspect", HandleWithCORS(http.HandlerFunc(s.handleInspect)))
	mux.Handle("/ws/render", websocket.Server{
		Handshake: func(c *websocket.Config, r *http.Request) error {
			return nil
		},
		Handler: s.handleWebsocketRender,
	})
	mux.HandleFunc("/health", HandleHealthCheck)

	return metrics.HTTPHandler(&mux, MetricsPathFormatter)
}

// AdminHandler returns the routes served on the admin address.
func AdminHandler() http.Handler {
	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/health", HandleHealthCheck)
	return &admin
}

func (s *Server) sceneOptions() scene.Options {
	return scene.Options{Seed: s.opts.Seed, TextureDir: s.opts.TextureDir}
}

// SceneSummary describes a scene and its default render settings.
type SceneSummary struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	MaxDepth        int    `json:"maxDepth"`
}

func (s *Server) sceneSummaries() ([]SceneSummary, error) {
	s.scenesOnce.Do(func() {
		for _, info := range scene.List() {
			sc, err := scene.Create(info.Name, s.sceneOptions())
			if err != nil {
				s.scenesErr = err
				return
			}

			camera := renderer.NewCamera(sc.Camera)
			s.scenes = append(s.scenes, SceneSummary{
				Name:            info.Name,
				Description:     info.Description,
				Width:           camera.Width(),
				Height:          camera.Height(),
				SamplesPerPixel: sc.Sampling.SamplesPerPixel,
				MaxDepth:        sc.Sampling.MaxDepth,
			})
		}
	})
	return s.scenes, s.scenesErr
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.sceneSummaries()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// RenderRequest selects a scene and overrides its defaults. Zero values keep
// the scene's settings.
type RenderRequest struct {
	Scene   string `json:"scene"`
	Width   int    `json:"width"`
	Samples int    `json:"samples"`
	Passes  int    `json:"passes"`
	Depth   int    `json:"depth"`
}

func parseRenderRequest(values url.Values) (RenderRequest, error) {
	req := RenderRequest{Scene: values.Get("scene")}

	var err error
	if req.Width, err = parseIntParam(values, "width"); err != nil {
		return RenderRequest{}, err
	}
	if req.Samples, err = parseIntParam(values, "samples"); err != nil {
		return RenderRequest{}, err
	}
	if req.Passes, err = parseIntParam(values, "passes"); err != nil {
		return RenderRequest{}, err
	}
	if req.Depth, err = parseIntParam(values, "depth"); err != nil {
		return RenderRequest{}, err
	}
	return req, nil
}

// parseIntParam returns 0 when key is absent.
func parseIntParam(values url.Values, key string) (int, error) {
	value := values.Get(key)
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("invalid integer parameter").
			WithType(ErrTypeBadRequest).
			WithTag("param", key).
			WithTag("value", value)
	}
	return parsed, nil
}

// normalize fills in the default scene and checks the overrides against the
// server limits.
func (s *Server) normalize(req RenderRequest) (RenderRequest, error) {
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	if err := checkRange("width", req.Width, minWidth, s.opts.MaxWidth); err != nil {
		return RenderRequest{}, err
	}
	if err := checkRange("samples", req.Samples, 1, s.opts.MaxSamples); err != nil {
		return RenderRequest{}, err
	}
	if err := checkRange("passes", req.Passes, 1, maxPasses); err != nil {
		return RenderRequest{}, err
	}
	if err := checkRange("depth", req.Depth, 1, maxDepth); err != nil {
		return RenderRequest{}, err
	}
	return req, nil
}

// checkRange accepts 0 as "not set".
func checkRange(key string, value, min, max int) error {
	if value == 0 || (value >= min && value <= max) {
		return nil
	}
	return errors.New("parameter out of range").
		WithType(ErrTypeBadRequest).
		WithTag("param", key).
		WithTag("value", value).
		WithTag("min", min).
		WithTag("max", max)
}

// newPipeline builds the scene of req and a progressive raytracer for it.
func (s *Server) newPipeline(renderID string, req RenderRequest) (*scene.Scene, *renderer.ProgressiveRaytracer, error) {
	sc, err := scene.Create(req.Scene, s.sceneOptions())
	if err != nil {
		return nil, nil, err
	}

	if req.Width > 0 {
		sc.Camera.Width = req.Width
	}
	if req.Samples > 0 {
		sc.Sampling.SamplesPerPixel = req.Samples
	}
	if req.Depth > 0 {
		sc.Sampling.MaxDepth = req.Depth
	}

	config := renderer.DefaultProgressiveConfig()
	if req.Passes > 0 {
		config.Passes = req.Passes
	}
	if s.opts.TileSize > 0 {
		config.TileSize = s.opts.TileSize
	}
	config.NumWorkers = s.opts.Workers
	config.Seed = s.opts.Seed
	config.RenderID = renderID

	pr, err := renderer.NewProgressiveRaytracer(sc.World, sc.Background, sc.Camera, sc.Sampling, config)
	if err != nil {
		return nil, nil, err
	}
	return sc, pr, nil
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

func newErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Type: errors.Type(err)}
}

func statusCode(err error) int {
	switch {
	case errors.IsType(err, ErrTypeBadRequest),
		errors.IsType(err, scene.ErrTypeUnknownScene),
		errors.IsType(err, renderer.ErrTypeInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		logs.WithTag("status", code).Error(err)
	}
	writeJSON(w, code, newErrorResponse(err))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logs.Warn(errors.New("writing json response failed").Wrap(err))
	}
}
