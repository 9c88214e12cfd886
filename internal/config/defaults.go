package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:  640,
			Height: 480,
		},
		Ball: BreakoutBall{
			Radius: 5,
			Speed:  2.5,
			Angle:  0.64,
		},
		Paddle: BreakoutPaddle{
			Width:  80,
			Height: 15,
			Y:      400,
			Nudge:  16,
		},
		Bricks: BreakoutBricks{
			Width:     64,
			Height:    20,
			TopMargin: 50,
		},
		Layout: []string{
			"####",
			"MX  XM",
			"XX XX XX",
			"M#  #M",
			"#XX#",
		},
	}
}
