package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:      640,
			Height:     480,
			Background: "#333333",
		},
		Player: PlayerConfig{
			X:            100,
			Y:            220, // world center minus half the sprite
			Width:        40,
			Height:       40,
			Hitbox:       Hitbox{Width: 30, Height: 30, OffsetX: 5, OffsetY: 5},
			Gravity:      1400,
			JumpVelocity: -450,
		},
		Obstacles: ObstacleConfig{
			PoolSize:  15,
			Width:     40,
			Height:    40,
			Hitbox:    Hitbox{Width: 30, Height: 30, OffsetX: 5, OffsetY: 5},
			BaseSpeed: 400,
		},
		Timers: TimerConfig{
			SpawnEveryMs: 300,
			ScoreEveryMs: 1000,
		},
		Labels: LabelConfig{
			Start:   "PRESS SPACE TO JUMP / START",
			Restart: "PRESS SPACE TO RESTART",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
