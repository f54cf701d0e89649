package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PlayerTuning is the yaml view of PlayerConfig
type PlayerTuning struct {
	MoveSpeed             float64       `yaml:"move_speed"`
	JumpSpeed             float64       `yaml:"jump_speed"`
	Gravity               float64       `yaml:"gravity"`
	MaxFallSpeed          float64       `yaml:"max_fall_speed"`
	StartingLives         int           `yaml:"starting_lives"`
	InvincibilityDuration time.Duration `yaml:"invincibility_duration"`
	SpeedBoostDuration    time.Duration `yaml:"speed_boost_duration"`
	SpeedBoostMultiplier  float64       `yaml:"speed_boost_multiplier"`
}

// EnemyTuning is the yaml view of EnemyConfig
type EnemyTuning struct {
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	PatrolDistance  float64 `yaml:"patrol_distance"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	Score           int     `yaml:"score"`
	DefaultStrategy string  `yaml:"default_strategy"`
}

// PowerUpTuning is the yaml view of PowerUpConfig
type PowerUpTuning struct {
	Score         int     `yaml:"score"`
	HoverHeight   float32 `yaml:"hover_height"`
	HoverDuration float32 `yaml:"hover_duration"`
}

// NetworkTuning is the yaml view of NetworkConfig
type NetworkTuning struct {
	RelayAddress     string        `yaml:"relay_address"`
	PositionInterval int           `yaml:"position_interval"`
	ChatTTL          time.Duration `yaml:"chat_ttl"`
}

// Tuning groups the values that can be overridden from a yaml file.
// Keys missing from the file keep their current value.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	PowerUp PowerUpTuning `yaml:"powerup"`
	Network NetworkTuning `yaml:"network"`
}

// CurrentTuning returns a snapshot of the live configuration
func CurrentTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			MoveSpeed:             Player.MoveSpeed,
			JumpSpeed:             Player.JumpSpeed,
			Gravity:               Player.Gravity,
			MaxFallSpeed:          Player.MaxFallSpeed,
			StartingLives:         Player.StartingLives,
			InvincibilityDuration: Player.InvincibilityDuration,
			SpeedBoostDuration:    Player.SpeedBoostDuration,
			SpeedBoostMultiplier:  Player.SpeedBoostMultiplier,
		},
		Enemy: EnemyTuning{
			PatrolSpeed:     Enemy.PatrolSpeed,
			PatrolDistance:  Enemy.PatrolDistance,
			Gravity:         Enemy.Gravity,
			MaxFallSpeed:    Enemy.MaxFallSpeed,
			Score:           Enemy.Score,
			DefaultStrategy: Enemy.DefaultStrategy,
		},
		PowerUp: PowerUpTuning{
			Score:         PowerUp.Score,
			HoverHeight:   PowerUp.HoverHeight,
			HoverDuration: PowerUp.HoverDuration,
		},
		Network: NetworkTuning{
			RelayAddress:     Network.DefaultRelayAddress,
			PositionInterval: Network.PositionInterval,
			ChatTTL:          Network.ChatTTL,
		},
	}
}

// ParseTuning decodes yaml on top of the current configuration and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the game cannot run with
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.MoveSpeed <= 0 {
		errs = append(errs, errors.New("player.move_speed must be positive"))
	}
	if t.Player.JumpSpeed < 0 {
		errs = append(errs, errors.New("player.jump_speed must not be negative"))
	}
	if t.Player.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("player.max_fall_speed must be positive"))
	}
	if t.Player.StartingLives <= 0 {
		errs = append(errs, errors.New("player.starting_lives must be positive"))
	}
	if t.Player.InvincibilityDuration < 0 || t.Player.SpeedBoostDuration < 0 {
		errs = append(errs, errors.New("player power-up durations must not be negative"))
	}
	if t.Player.SpeedBoostMultiplier < 1 {
		errs = append(errs, errors.New("player.speed_boost_multiplier must be at least 1"))
	}
	switch t.Enemy.DefaultStrategy {
	case "none", "patrol", "script":
	default:
		errs = append(errs, fmt.Errorf("enemy.default_strategy %q is not one of none, patrol, script", t.Enemy.DefaultStrategy))
	}
	if t.Network.PositionInterval <= 0 {
		errs = append(errs, errors.New("network.position_interval must be positive"))
	}
	if t.Network.ChatTTL <= 0 {
		errs = append(errs, errors.New("network.chat_ttl must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tuning: %w", err)
	}
	return nil
}

// Apply writes the tuning into the global configuration. Call it from the
// goroutine that runs the game update.
func (t Tuning) Apply() {
	Player.MoveSpeed = t.Player.MoveSpeed
	Player.JumpSpeed = t.Player.JumpSpeed
	Player.Gravity = t.Player.Gravity
	Player.MaxFallSpeed = t.Player.MaxFallSpeed
	Player.StartingLives = t.Player.StartingLives
	Player.InvincibilityDuration = t.Player.InvincibilityDuration
	Player.SpeedBoostDuration = t.Player.SpeedBoostDuration
	Player.SpeedBoostMultiplier = t.Player.SpeedBoostMultiplier

	Enemy.PatrolSpeed = t.Enemy.PatrolSpeed
	Enemy.PatrolDistance = t.Enemy.PatrolDistance
	Enemy.Gravity = t.Enemy.Gravity
	Enemy.MaxFallSpeed = t.Enemy.MaxFallSpeed
	Enemy.Score = t.Enemy.Score
	Enemy.DefaultStrategy = t.Enemy.DefaultStrategy

	PowerUp.Score = t.PowerUp.Score
	PowerUp.HoverHeight = t.PowerUp.HoverHeight
	PowerUp.HoverDuration = t.PowerUp.HoverDuration

	Network.DefaultRelayAddress = t.Network.RelayAddress
	Network.PositionInterval = t.Network.PositionInterval
	Network.ChatTTL = t.Network.ChatTTL
}

// LoadTuning reads a tuning file from fsys and applies it
func LoadTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

// LoadTuningFile reads a tuning file from disk and applies it
func LoadTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}
