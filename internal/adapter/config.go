// Package adapter provides the IO edges of bloch: configuration files, logging
// and terminal detection.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFPS is the frame rate the viewer animates at.
	DefaultFPS = 60
	maxFPS     = 240
)

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// CameraConfig is the initial orbit of the viewer camera, in radians.
type CameraConfig struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
}

// Config holds user settings loaded from a YAML file and overridden by flags.
type Config struct {
	Seed   uint64       `yaml:"seed"`
	FPS    int          `yaml:"fps"`
	Log    LogConfig    `yaml:"log"`
	Camera CameraConfig `yaml:"camera"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		FPS: DefaultFPS,
		Log: LogConfig{Level: "info"},
		Camera: CameraConfig{
			Yaw:   0.8,
			Pitch: 0.45,
		},
	}
}

// ConfigLoader reads configuration files.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

type fileConfigLoader struct{}

// NewConfigLoader constructs a ConfigLoader reading from the local filesystem.
func NewConfigLoader() ConfigLoader {
	return &fileConfigLoader{}
}

// Load reads path on top of DefaultConfig. An empty path returns the defaults.
func (l *fileConfigLoader) Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err = ParseConfig(content)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML content on top of DefaultConfig and validates it.
func ParseConfig(content []byte) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", maxFPS, c.FPS)
	}

	return nil
}
