package main

import (
	"context"
	"net/http"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/web/server"
	"github.com/segmentio/encoding/json"
)

// Keeps the config field names readable by the cli package under obfuscation.
var _ = reflect.TypeOf(config{})

type config struct {
	Addr       string `cli:""        env:"RAYTRACER_ADDR"        help:"Listening address for render clients."`
	AdminAddr  string `cli:""        env:"RAYTRACER_ADMIN_ADDR"  help:"Admin listening address."`
	TextureDir string `cli:""        env:"RAYTRACER_TEXTURE_DIR" help:"Directory holding image textures."`
	Seed       int    `cli:""        env:"RAYTRACER_SEED"        help:"Seed of scene construction and sampling."`
	Workers    int    `cli:""        env:"RAYTRACER_WORKERS"     help:"Render workers per request; 0 uses every CPU."`
	MaxWidth   int    `cli:",hidden" env:"RAYTRACER_MAX_WIDTH"   help:"Largest accepted image width."`
	MaxSamples int    `cli:",hidden" env:"RAYTRACER_MAX_SAMPLES" help:"Largest accepted samples per pixel."`
	LogLevel   string `cli:""        env:"RAYTRACER_LOG_LEVEL"   help:"Log level (debug|info|warning|error)."`
	LogIndent  bool   `cli:""        env:"RAYTRACER_LOG_INDENT"  help:"Indent logs."`
	Help       bool   `cli:""        env:"-"                     help:"Show help."`
}

func main() {
	defaults := server.DefaultOptions()
	conf := config{
		Addr:       ":8080",
		AdminAddr:  ":18080",
		TextureDir: defaults.TextureDir,
		Seed:       int(defaults.Seed),
		MaxWidth:   defaults.MaxWidth,
		MaxSamples: defaults.MaxSamples,
		LogLevel:   logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Serves progressive renders over server-sent events and websockets.").
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

	if conf.Workers < 0 {
		logs.Fatal(errors.New("workers can't be negative").WithTag("workers", conf.Workers))
	}

	srv := server.New(server.Options{
		TextureDir: conf.TextureDir,
		Seed:       int64(conf.Seed),
		Workers:    conf.Workers,
		MaxWidth:   conf.MaxWidth,
		MaxSamples: conf.MaxSamples,
	})

	logs.WithTag("addr", conf.Addr).
		WithTag("admin_addr", conf.AdminAddr).
		WithTag("log_level", conf.LogLevel).
		Info("starting raytracer web server")

	server.ListenAndServe(ctx,
		&http.Server{Addr: conf.Addr, Handler: srv.Handler()},
		&http.Server{Addr: conf.AdminAddr, Handler: server.AdminHandler()},
	)
}
