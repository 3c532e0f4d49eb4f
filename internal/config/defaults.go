package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default falling-blocks configuration:
// the canonical 10x22 field, gravity every 48 ticks, gray ghost piece.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 22,
		},
		GravityTicks: 48,
		Shadow:       ShadowGray,
	}
}
