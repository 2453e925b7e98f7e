package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".hanoi.yaml"

type Config struct {
	Pegs          int    `yaml:"pegs"`
	Discs         int    `yaml:"discs"`
	Step          int    `yaml:"step"`
	DelayMS       int    `yaml:"delay_ms"`
	ScreenWidth   int    `yaml:"screen_width"`
	ScreenHeight  int    `yaml:"screen_height"`
	SaveDirectory string `yaml:"save_directory"`
}

func defaultConfig() *Config {
	return &Config{
		Pegs:         defaultPegs,
		Discs:        defaultDiscs,
		Step:         defaultStep,
		DelayMS:      int(defaultDelay / time.Millisecond),
		ScreenWidth:  defaultScreenWidth,
		ScreenHeight: defaultScreenHeight,
	}
}

// loadConfig reads the YAML config at path over the defaults. An empty path
// means ~/.hanoi.yaml, which may be absent.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return config, nil
		}
		path = filepath.Join(homeDir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	config.SaveDirectory = expandPath(config.SaveDirectory)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// Validate checks that the board fits the logical screen: every peg needs a
// digit key, discs need a positive height and width, and the tallest tower
// must stay below the top boundary the animation lifts discs to.
func (c *Config) Validate() error {
	l := c.Layout()
	switch {
	case c.Pegs < 2 || c.Pegs > maxPegs:
		return fmt.Errorf("pegs must be between 2 and %d, got %d", maxPegs, c.Pegs)
	case c.Discs < 1 || c.Discs > maxDiscs:
		return fmt.Errorf("discs must be between 1 and %d, got %d", maxDiscs, c.Discs)
	case c.Step < 1:
		return fmt.Errorf("step must be positive, got %d", c.Step)
	case c.DelayMS < 1:
		return fmt.Errorf("delay_ms must be positive, got %d", c.DelayMS)
	case c.ScreenHeight < l.PegDistance+l.TopBoundary:
		return fmt.Errorf("screen_height must be at least %d, got %d", l.PegDistance+l.TopBoundary, c.ScreenHeight)
	case c.ScreenWidth/(c.Pegs+1) <= 2*l.PegWidth:
		return fmt.Errorf("screen_width %d is too narrow for %d pegs", c.ScreenWidth, c.Pegs)
	}
	return nil
}

func (c *Config) Layout() Layout {
	l := defaultLayout()
	l.Pegs = c.Pegs
	l.Discs = c.Discs
	l.Step = c.Step
	return l
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
