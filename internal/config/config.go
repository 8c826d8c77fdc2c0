// Package config loads the turtle CLI configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/turtle"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration. Fields left out of a file keep their
// defaults.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	FrameDelay    time.Duration `yaml:"frame_delay"`
	BlinkInterval time.Duration `yaml:"blink_interval"`
	MoveSteps     int           `yaml:"move_steps"`
	TurnSteps     int           `yaml:"turn_steps"`

	Background string  `yaml:"background"`
	PenColor   string  `yaml:"pen_color"`
	PenSize    float64 `yaml:"pen_size"`

	// History is the path of the command history database. Empty
	// disables history.
	History string `yaml:"history"`

	Log Log `yaml:"log"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	// File, when set, also receives JSON log records.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		FrameDelay:    turtle.DefaultFrameDelay,
		BlinkInterval: turtle.DefaultBlinkInterval,
		MoveSteps:     turtle.DefaultMoveSteps,
		TurnSteps:     turtle.DefaultTurnSteps,
		Background:    turtle.DefaultBackground,
		PenColor:      turtle.DefaultPenColor,
		PenSize:       turtle.DefaultPenSize,
		Log:           Log{Level: "warn"},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	case c.MoveSteps < 1:
		return fmt.Errorf("move_steps must be at least 1, got %d", c.MoveSteps)
	case c.TurnSteps < 1:
		return fmt.Errorf("turn_steps must be at least 1, got %d", c.TurnSteps)
	case c.FrameDelay < 0 || c.BlinkInterval < 0:
		return errors.New("durations must not be negative")
	}
	_, err := c.Log.SlogLevel()
	return err
}

// SlogLevel parses Level. Empty means warn.
func (l Log) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// TurtleOptions returns the turtle options the configuration selects.
func (c Config) TurtleOptions() []turtle.Option {
	return []turtle.Option{
		turtle.WithFrameDelay(c.FrameDelay),
		turtle.WithBlinkInterval(c.BlinkInterval),
		turtle.WithMoveSteps(c.MoveSteps),
		turtle.WithTurnSteps(c.TurnSteps),
		turtle.WithBackground(c.Background),
		turtle.WithPenColor(c.PenColor),
		turtle.WithPenSize(c.PenSize),
	}
}
