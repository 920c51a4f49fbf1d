// Command showcase opens a layout document and runs its scroll-synchronized
// galleries in a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spacemonkeygo/monkit/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/showcase"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	documentPath := flag.String("document", "", "Layout document (overrides config)")
	assetsDir := flag.String("assets", "", "Asset directory (overrides config)")
	startURL := flag.String("url", "", "Page to open first (overrides config)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	workers := flag.Int("workers", 0, "Concurrent texture decodes (overrides config)")
	scriptPath := flag.String("script", "", "JSON input script to replay (overrides config)")
	debug := flag.Bool("debug", false, "Log draw statistics and dump metrics on exit")
	showFPS := flag.Bool("fps", false, "Show the FPS overlay")
	flag.Parse()

	cfg := showcase.DefaultConfig()
	if *configPath != "" {
		loaded, err := showcase.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	applyFlags(&cfg, *documentPath, *assetsDir, *startURL, *scriptPath, *width, *height, *workers, *debug)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, *showFPS, log); err != nil {
		log.Fatal("showcase failed", zap.Error(err))
	}
	if cfg.Debug {
		dumpMetrics(log)
	}
}

func applyFlags(cfg *showcase.Config, document, assets, url, script string, width, height, workers int, debug bool) {
	if document != "" {
		cfg.Document = document
	}
	if assets != "" {
		cfg.Assets = assets
	}
	if url != "" {
		cfg.StartURL = url
	}
	if script != "" {
		cfg.Script = script
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
}

func newLogger(cfg showcase.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, showcase.ConfigError.New("log level %q: %v", cfg.LogLevel, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func run(cfg showcase.Config, showFPS bool, log *zap.Logger) error {
	doc, err := showcase.LoadDocument(cfg.Document)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	assets := doc.Assets()
	log.Info("preloading", zap.Int("assets", len(assets)), zap.String("dir", cfg.Assets))
	textures, err := showcase.Preload(ctx, assets, showcase.PreloadOptions{
		Log:     log,
		Open:    showcase.DirOpener(cfg.Assets),
		Workers: cfg.Workers,
		Progress: func(loaded, total int) {
			log.Info("preload", zap.Int("percent", loaded*100/total))
		},
	})
	if err != nil {
		return err
	}

	app, err := showcase.NewApp(showcase.AppOptions{
		Document: doc,
		Textures: textures,
		Log:      log,
		Viewport: cfg.Viewport(),
		StartURL: cfg.StartURL,
		Debug:    cfg.Debug,
		ShowFPS:  showFPS,

		ScreenshotDir: cfg.Screenshots,
	})
	if err != nil {
		return err
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(filepath.Clean(cfg.Script))
		if err != nil {
			return showcase.ScriptError.Wrap(err)
		}
		runner, err := showcase.LoadScript(data, log)
		if err != nil {
			return err
		}
		app.SetScript(runner)
	}

	return showcase.Run(app, showcase.RunConfig{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
}

func dumpMetrics(log *zap.Logger) {
	monkit.Default.Stats(func(key monkit.SeriesKey, field string, val float64) {
		log.Debug("metric", zap.String("series", key.WithField(field)), zap.Float64("value", val))
	})
}
