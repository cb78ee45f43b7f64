package collector

import (
	"errors"
	"fmt"
	"time"
)

// Config holds grid and pacing parameters.
type Config struct {
	Cols, Rows      int
	InitialInterval time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	GameOverDelay   time.Duration
	// SwipeThreshold is the drag distance a turn must exceed.
	SwipeThreshold float64
}

// DefaultConfig returns the standard 20x20 board settings.
func DefaultConfig() Config {
	return Config{
		Cols:            20,
		Rows:            20,
		InitialInterval: 300 * time.Millisecond,
		IntervalStep:    10 * time.Millisecond,
		MinInterval:     100 * time.Millisecond,
		GameOverDelay:   3 * time.Second,
		SwipeThreshold:  30,
	}
}

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("collector: invalid config")

// Validate checks that the board can be played.
func (c Config) Validate() error {
	switch {
	case c.Cols < 3 || c.Rows < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, c.Cols, c.Rows)
	case c.MinInterval <= 0:
		return fmt.Errorf("%w: min interval must be positive", ErrInvalidConfig)
	case c.InitialInterval < c.MinInterval:
		return fmt.Errorf("%w: initial interval %v below min %v", ErrInvalidConfig, c.InitialInterval, c.MinInterval)
	case c.IntervalStep < 0:
		return fmt.Errorf("%w: interval step must not be negative", ErrInvalidConfig)
	case c.GameOverDelay < 0:
		return fmt.Errorf("%w: game over delay must not be negative", ErrInvalidConfig)
	case c.SwipeThreshold < 0:
		return fmt.Errorf("%w: swipe threshold must not be negative", ErrInvalidConfig)
	}
	return nil
}
