package settings

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tim-hardcastle/curly/source/archive"
)

// Config is the user's configuration, as read from a YAML file.
type Config struct {
	// The Go type given to unannotated parameters and unknowable results by the compiler.
	DefaultType string `yaml:"default_type"`
	Color       bool   `yaml:"color"`
	Prompt      string `yaml:"prompt"`
	// Path of a file of Go declarations to put in front of generated programs.
	Prelude string `yaml:"prelude"`
	// How deeply evaluation may nest before the evaluator gives up.
	MaxDepth int           `yaml:"max_depth"`
	Archive  ArchiveConfig `yaml:"archive"`
	Log      LogConfig     `yaml:"log"`
}

type ArchiveConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

const (
	DEFAULT_TYPE   = "int"
	DEFAULT_DRIVER = "sqlite"
	DEFAULT_DSN    = "curly.db"
	DEFAULT_PROMPT = "→ "

	DEFAULT_MAX_DEPTH = 10000
)

func Default() *Config {
	return &Config{
		DefaultType: DEFAULT_TYPE,
		Color:       true,
		Prompt:      DEFAULT_PROMPT,
		MaxDepth:    DEFAULT_MAX_DEPTH,
		Archive:     ArchiveConfig{Driver: DEFAULT_DRIVER, DSN: DEFAULT_DSN},
	}
}

// Load reads the configuration at path. Fields missing from the file keep their default values.
// An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.DefaultType == "" {
		return errors.New("default_type can't be empty")
	}
	if cfg.MaxDepth <= 0 {
		return errors.Errorf("max_depth must be positive, not %d", cfg.MaxDepth)
	}
	if !slices.Contains(archive.DriverNames(), cfg.Archive.Driver) {
		return errors.Errorf("unknown archive driver %q", cfg.Archive.Driver)
	}
	return nil
}

// ReadPrelude returns the contents of the prelude file, if there is one.
func (cfg *Config) ReadPrelude() (string, error) {
	if cfg.Prelude == "" {
		return "", nil
	}
	b, err := os.ReadFile(cfg.Prelude)
	if err != nil {
		return "", errors.Wrapf(err, "reading prelude %q", cfg.Prelude)
	}
	return string(b), nil
}
