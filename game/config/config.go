package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/tty-fifteen/game/engine"
)

const (
	MinDimension = engine.MinDimension
	MaxDimension = engine.MaxDimension
)

// Options holds everything a front end needs to start a game
type Options struct {
	Lines   int    `json:"lines"`
	Rows    int    `json:"rows"`
	Debug   bool   `json:"debug"`
	LogFile string `json:"log_file"`
}

// Default returns the classic 4x4 options
func Default() Options {
	return Options{
		Lines: engine.DefaultDimension,
		Rows:  engine.DefaultDimension,
	}
}

// DimensionError reports a dimension option outside the allowed range
type DimensionError struct {
	Option string
	Value  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid %s %d. Maximum %s: %d, Minimum %s: %d.",
		e.Option, e.Value, e.Option, MaxDimension, e.Option, MinDimension)
}

func (e *DimensionError) Unwrap() error {
	return engine.ErrInvalidDimensions
}

// Validate checks both dimensions, lines first
func (o Options) Validate() error {
	if o.Lines < MinDimension || o.Lines > MaxDimension {
		return &DimensionError{Option: "lines", Value: o.Lines}
	}
	if o.Rows < MinDimension || o.Rows > MaxDimension {
		return &DimensionError{Option: "rows", Value: o.Rows}
	}
	return nil
}

// Fields returns the options as structured log fields
func (o Options) Fields() logrus.Fields {
	return logrus.Fields{
		"lines":    o.Lines,
		"rows":     o.Rows,
		"debug":    o.Debug,
		"log_file": o.LogFile,
	}
}
