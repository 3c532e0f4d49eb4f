// Package config provides YAML-based game configuration loading for the
// blockfall platform.
package config

import "fmt"

// ShadowStyle controls how the ghost piece is displayed. It affects
// rendering only and never influences collision or validity logic.
type ShadowStyle string

const (
	// ShadowOff hides the ghost piece.
	ShadowOff ShadowStyle = "off"
	// ShadowGray draws the ghost piece in a uniform gray.
	ShadowGray ShadowStyle = "gray"
	// ShadowPiece draws the ghost piece in the falling piece's own color.
	ShadowPiece ShadowStyle = "piece"
)

// ParseShadowStyle converts a string to a ShadowStyle.
func ParseShadowStyle(s string) (ShadowStyle, error) {
	switch ShadowStyle(s) {
	case ShadowOff, ShadowGray, ShadowPiece:
		return ShadowStyle(s), nil
	default:
		return "", fmt.Errorf("config: unknown shadow style %q (want off, gray or piece)", s)
	}
}

// ShadowStyles returns all valid shadow styles.
func ShadowStyles() []ShadowStyle {
	return []ShadowStyle{ShadowOff, ShadowGray, ShadowPiece}
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksConfig contains all configuration for the falling-blocks game.
type BlocksConfig struct {
	Board BoardConfig `yaml:"board"`
	// GravityTicks is the fixed number of simulation ticks between
	// automatic descents of the falling piece.
	GravityTicks int         `yaml:"gravity_ticks"`
	Shadow       ShadowStyle `yaml:"shadow"`
}

// Validate checks the configuration for values the game cannot run with.
func (c BlocksConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.GravityTicks < 1 {
		return fmt.Errorf("config: gravity_ticks must be at least 1, got %d", c.GravityTicks)
	}
	if _, err := ParseShadowStyle(string(c.Shadow)); err != nil {
		return err
	}
	return nil
}
