// Package controller presents the qubit engine to the user, either as an
// interactive terminal viewer or as plain text.
package controller

import (
	"github.com/mouse-blink/bloch/internal/adapter"
	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
)

// SessionOption is a functional option for Interactive.
type SessionOption func(*SessionConfig)

// SessionConfig holds configuration for an interactive session.
type SessionConfig struct {
	fps    int
	camera camera
}

func newSessionConfig(options ...SessionOption) SessionConfig {
	cfg := SessionConfig{
		fps:    adapter.DefaultFPS,
		camera: camera{yaw: 0.8, pitch: 0.45},
	}

	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithFPS sets how many frames per second the viewer renders. Each frame
// advances an in-flight transition by one sample.
func WithFPS(fps int) SessionOption {
	return func(c *SessionConfig) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithCamera sets the initial camera orbit in radians.
func WithCamera(yaw, pitch float64) SessionOption {
	return func(c *SessionConfig) {
		c.camera = camera{}.orbit(yaw, pitch)
	}
}

// UI defines how frames, measurements and shot statistics reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Interactive(engine domain.Engine, options ...SessionOption) error
	DisplayFrame(frame m.Frame) error
	DisplayMeasurement(measurement m.Measurement) error
	DisplayShots(summary m.ShotSummary) error
}
