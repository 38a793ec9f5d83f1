package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"simulacra/internal/app"
	"simulacra/internal/debug"
	"simulacra/internal/engineconfig"
	"simulacra/internal/env"
	"simulacra/internal/logger"
	"simulacra/internal/metrics"
	"simulacra/internal/window"
)

func init() {
	// Windowing and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

type rootOptions struct {
	configPath  string
	title       string
	width       int
	height      int
	backend     string
	frames      int
	logLevel    string
	metricsAddr string
	debugEvents bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Base().Fatal().Err(err).Msg("simulacra failed")
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "simulacra",
		Short:         "Run the simulacra engine",
		Long:          "Opens a render surface and runs the event loop until the window is closed.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	f := cmd.Flags()
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", engineconfig.DefaultPath, "path to the engine config file")
	f.StringVar(&opts.title, "title", "", "window title")
	f.IntVar(&opts.width, "width", 0, "window width in pixels")
	f.IntVar(&opts.height, "height", 0, "window height in pixels")
	f.StringVar(&opts.backend, "backend", "", "render backend (native|headless)")
	f.IntVar(&opts.frames, "frames", 0, "headless backend: close after this many frames (0 runs until killed)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	f.BoolVar(&opts.debugEvents, "debug-events", false, "log every event the debug layer observes")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

// loadConfig layers the config file, .env / environment and explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (engineconfig.Config, error) {
	if _, err := env.Load(".env"); err != nil {
		return engineconfig.Config{}, err
	}
	cfg, err := engineconfig.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	f := cmd.Flags()
	if f.Changed("title") {
		cfg.Title = opts.title
	}
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Height = opts.height
	}
	if f.Changed("backend") {
		cfg.Backend = opts.backend
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func run(cfg engineconfig.Config, opts *rootOptions) error {
	logger.Configure(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	log := logger.WithComponent("main")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("metrics server shutdown")
			}
		}()
	}

	surface, err := newSurface(cfg, opts)
	if err != nil {
		return err
	}

	a := app.New(cfg, surface, app.WithMetrics(m))
	dbg := debug.New(logger.WithComponent("debug"))
	dbg.SetLogEvents(opts.debugEvents)
	dbg.SetReportMem(zerolog.GlobalLevel() <= zerolog.DebugLevel)
	a.PushLayer(dbg)

	if err := a.Init(); err != nil {
		_ = a.Shutdown()
		return err
	}
	runErr := a.Run()
	if err := a.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	return runErr
}

func newSurface(cfg engineconfig.Config, opts *rootOptions) (window.Surface, error) {
	switch cfg.Backend {
	case engineconfig.BackendHeadless:
		h := window.NewHeadless(cfg.Props())
		h.CloseAfter = opts.frames
		return h, nil
	case engineconfig.BackendNative:
		return newNativeSurface(cfg.Props(), logger.WithComponent("surface")), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func serveMetrics(addr string, reg *prometheus.Registry, log zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server")
		}
	}()
	return srv
}
