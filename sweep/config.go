package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Shapes a sweep can start from.
const (
	ShapeRandom = "random"
	ShapeSorted = "sorted"
)

var ErrInvalidConfig = errors.New("invalid sweep config")

// Config describes which trees a sweep builds and how hard it works.
type Config struct {
	// Sizes lists the number of keys in each tree.
	Sizes []int `yaml:"sizes"`
	// Trials is the number of trees built per size.
	Trials int `yaml:"trials"`
	// Seed derives every per-tree seed, so a sweep is repeatable.
	Seed int64 `yaml:"seed"`
	// Workers bounds the number of trees being measured at once.
	Workers int `yaml:"workers"`
	// Shape is ShapeRandom or ShapeSorted.
	Shape string `yaml:"shape"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:   []int{10, 100, 1000},
		Trials:  10,
		Seed:    1,
		Workers: 4,
		Shape:   ShapeRandom,
	}
}

// LoadConfig reads a YAML config from path. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read sweep config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse sweep config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}

	for _, s := range c.Sizes {
		if s < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, s)
		}
	}

	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidConfig, c.Trials)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}

	switch c.Shape {
	case ShapeRandom, ShapeSorted:
	default:
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, c.Shape)
	}

	return nil
}
