package showcase

import (
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// ConfigError is the error class for configuration failures.
var ConfigError = errs.Class("config")

// Config holds the program settings. Zero fields of a loaded file fall back
// to DefaultConfig.
type Config struct {
	Title    string `yaml:"title"`
	Document string `yaml:"document"`
	Assets   string `yaml:"assets"`
	StartURL string `yaml:"start_url"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Workers bounds concurrent texture decodes.
	Workers int `yaml:"workers"`
	// Script is an optional scripted input session.
	Script string `yaml:"script,omitempty"`
	// Screenshots is where scripted screenshot steps write PNGs.
	Screenshots string `yaml:"screenshots"`

	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:    "showcase",
		Document: "site.yaml",
		Assets:   "assets",
		StartURL: "/",
		Width:    1280,
		Height:   720,
		Workers:  defaultPreloadWorkers,
		LogLevel: "info",

		Screenshots: defaultScreenshotDir,
	}
}

// ParseConfig decodes YAML settings over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, ConfigError.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads YAML settings from path over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ConfigError.Wrap(err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Document == "":
		return ConfigError.New("document path is required")
	case c.Width <= 0 || c.Height <= 0:
		return ConfigError.New("window size must be positive, got %dx%d", c.Width, c.Height)
	case c.Workers < 0:
		return ConfigError.New("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Viewport returns the initial window size as a Viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Width: float64(c.Width), Height: float64(c.Height)}
}
