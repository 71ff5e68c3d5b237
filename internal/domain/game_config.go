package domain

import "fmt"

const (
	MinDelayMs     = 50
	MaxDelayMs     = 300
	DefaultDelayMs = 140
)

type GameConfig struct {
	TileSize      int32
	Width         int32
	Height        int32
	InitialLength int
	DelayMs       int32
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TileSize:      25,
		Width:         800,
		Height:        800,
		InitialLength: 3,
		DelayMs:       DefaultDelayMs,
	}
}

func (c *GameConfig) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if c.InitialLength < 3 {
		return fmt.Errorf("initial length must be at least 3, got %d", c.InitialLength)
	}
	if c.InitialLength > c.tileCount() {
		return fmt.Errorf("initial length %d exceeds tile count %d", c.InitialLength, c.tileCount())
	}
	if c.DelayMs < MinDelayMs || c.DelayMs > MaxDelayMs {
		return fmt.Errorf("delay must be within [%d, %d] ms, got %d", MinDelayMs, MaxDelayMs, c.DelayMs)
	}
	return nil
}

func (c *GameConfig) Grid() (*Grid, error) {
	return NewGrid(c.TileSize, c.Width, c.Height)
}

func (c *GameConfig) tileCount() int {
	if c.TileSize <= 0 {
		return 0
	}
	return int(c.Width/c.TileSize) * int(c.Height/c.TileSize)
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		TileSize:      c.TileSize,
		Width:         c.Width,
		Height:        c.Height,
		InitialLength: c.InitialLength,
		DelayMs:       c.DelayMs,
	}
}

// ClampDelay bounds a requested tick delay to the supported speed range.
func ClampDelay(ms int32) int32 {
	if ms < MinDelayMs {
		return MinDelayMs
	}
	if ms > MaxDelayMs {
		return MaxDelayMs
	}
	return ms
}
