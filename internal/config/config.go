// Package config provides YAML-based game configuration loading and
// validation for the dodge game.
package config

import "time"

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	World       WorldConfig    `yaml:"world"`
	Player      PlayerConfig   `yaml:"player"`
	Obstacles   ObstacleConfig `yaml:"obstacles"`
	Timers      TimerConfig    `yaml:"timers"`
	Labels      LabelConfig    `yaml:"labels"`
	Diagnostics bool           `yaml:"diagnostics"` // Show the FPS overlay at start
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // Hex color, e.g. "#333333"
}

// Hitbox is a collision rectangle inset into a sprite.
type Hitbox struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// PlayerConfig defines the player sprite and its physics.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Hitbox       Hitbox  `yaml:"hitbox"`
	Gravity      float64 `yaml:"gravity"`       // Units per second squared, positive = down
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set by a jump, negative = up
}

// ObstacleConfig defines obstacle sprites and the pool they come from.
type ObstacleConfig struct {
	PoolSize  int     `yaml:"pool_size"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Hitbox    Hitbox  `yaml:"hitbox"`
	BaseSpeed float64 `yaml:"base_speed"` // Speed range is [base, 2*base)
}

// TimerConfig defines the periodic spawn and score timers.
type TimerConfig struct {
	SpawnEveryMs int `yaml:"spawn_every_ms"`
	ScoreEveryMs int `yaml:"score_every_ms"`
}

// LabelConfig defines on-screen text.
type LabelConfig struct {
	Start   string `yaml:"start"`
	Restart string `yaml:"restart"`
}

// SpawnInterval returns the spawn timer period.
func (c DodgeConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Timers.SpawnEveryMs) * time.Millisecond
}

// ScoreInterval returns the score timer period.
func (c DodgeConfig) ScoreInterval() time.Duration {
	return time.Duration(c.Timers.ScoreEveryMs) * time.Millisecond
}

// MaxObstacleLifetime is the longest an obstacle can stay in the world:
// the slowest obstacle crossing the full width plus its own width.
func (c DodgeConfig) MaxObstacleLifetime() time.Duration {
	if c.Obstacles.BaseSpeed <= 0 {
		return 0
	}
	secs := (c.World.Width + c.Obstacles.Width) / c.Obstacles.BaseSpeed
	return time.Duration(secs * float64(time.Second))
}
