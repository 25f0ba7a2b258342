package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a configuration that would break the game loop.
var ErrInvalidConfig = errors.New("invalid config")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadDodge loads and validates the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	cfg, err := loadDodge(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadDodge(customPath string) (DodgeConfig, error) {
	// Unset keys keep their defaults.
	cfg := DefaultDodgeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultDodgeConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultDodgeConfig()
	}

	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks dimensions, timer periods and the obstacle pool
// invariant: the pool must hold every obstacle that can be alive at once,
// so pool_size spawn periods have to outlast the slowest obstacle plus one
// spawn period. Spawns catch up per tick and retirement lags a tick behind
// the continuous crossing time.
func (c DodgeConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size %gx%g: %w", c.World.Width, c.World.Height, ErrInvalidConfig)
	case c.World.Background != "" && !hexColor.MatchString(c.World.Background):
		return fmt.Errorf("config: background %q is not a #rrggbb color: %w", c.World.Background, ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size %gx%g: %w", c.Player.Width, c.Player.Height, ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("config: obstacle size %gx%g: %w", c.Obstacles.Width, c.Obstacles.Height, ErrInvalidConfig)
	case c.Obstacles.Height >= c.World.Height:
		return fmt.Errorf("config: obstacle height %g leaves no spawn range in world height %g: %w",
			c.Obstacles.Height, c.World.Height, ErrInvalidConfig)
	case c.Obstacles.PoolSize <= 0:
		return fmt.Errorf("config: pool_size %d: %w", c.Obstacles.PoolSize, ErrInvalidConfig)
	case c.Obstacles.BaseSpeed <= 0:
		return fmt.Errorf("config: base_speed %g: %w", c.Obstacles.BaseSpeed, ErrInvalidConfig)
	case c.Timers.SpawnEveryMs <= 0 || c.Timers.ScoreEveryMs <= 0:
		return fmt.Errorf("config: timer periods %dms/%dms: %w",
			c.Timers.SpawnEveryMs, c.Timers.ScoreEveryMs, ErrInvalidConfig)
	}

	budget := c.SpawnInterval() * time.Duration(c.Obstacles.PoolSize)
	if needed := c.MaxObstacleLifetime() + c.SpawnInterval(); budget <= needed {
		return fmt.Errorf("config: pool of %d obstacles spawned every %v lasts %v, needs more than %v: %w",
			c.Obstacles.PoolSize, c.SpawnInterval(), budget, needed, ErrInvalidConfig)
	}
	return nil
}
