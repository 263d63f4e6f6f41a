/*
* Handles reading the git-churn configuration file.
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sinclairtarget/git-churn/internal/pretty"
	"github.com/sinclairtarget/git-churn/internal/render"
)

// Looked for at the root of the working tree.
const FileName = ".git-churn.yaml"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Author string `yaml:"author"`
	Since  string `yaml:"since"` // YYYY-MM-DD
	Days   int    `yaml:"days"`  // Alternative to since, counting back from today
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

func Default() Config {
	return Config{
		Format: string(render.Long),
		Color:  string(pretty.ColorAuto),
	}
}

// Reads the config file at the root of the given working tree, falling back to
// defaults if there isn't one.
func Load(rootDir string) (Config, error) {
	path := filepath.Join(rootDir, FileName)

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		logger().Debug("no config file found", "path", path)
		return Default(), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("error checking for config file: %w", err)
	}

	return LoadFromPath(path)
}

// Reads a specific config file. Values missing from the file keep their
// defaults.
func LoadFromPath(path string) (_ Config, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error loading config from %s: %w", path, err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	logger().Debug("loaded config", "path", path, "config", cfg)
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := pretty.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Days < 0 {
		return fmt.Errorf(
			"%w: days must be non-negative, got %d",
			ErrInvalidConfig,
			c.Days,
		)
	}

	if c.Since != "" && c.Days > 0 {
		return fmt.Errorf(
			"%w: since and days are mutually exclusive",
			ErrInvalidConfig,
		)
	}

	if c.Since != "" {
		if _, err := time.Parse(time.DateOnly, c.Since); err != nil {
			return fmt.Errorf(
				"%w: since must look like YYYY-MM-DD: %v",
				ErrInvalidConfig,
				err,
			)
		}
	}

	return nil
}

// Returns the first day to count changes from, or the zero time if every
// commit counts.
//
// Days are counted back from the start of the day containing now.
func (c Config) Start(now time.Time) (time.Time, error) {
	if c.Since != "" {
		t, err := time.ParseInLocation(time.DateOnly, c.Since, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf(
				"could not parse since date \"%s\": %w",
				c.Since,
				err,
			)
		}

		return t, nil
	}

	if c.Days > 0 {
		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		return today.AddDate(0, 0, -c.Days), nil
	}

	return time.Time{}, nil
}
