package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64
	JumpSpeed float64

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Lives
	StartingLives int

	// Power-up effects
	InvincibilityDuration time.Duration
	SpeedBoostDuration    time.Duration
	SpeedBoostMultiplier  float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Spawn used when no map is loaded
	DefaultSpawnX float64
	DefaultSpawnY float64
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	PatrolSpeed     float64
	PatrolDistance  float64 // Half-width of the default patrol range around the spawn
	Gravity         float64
	MaxFallSpeed    float64
	CollisionWidth  int
	CollisionHeight int
	Score           int    // Awarded when an invincible player runs through an enemy
	DefaultStrategy string // "none", "patrol" or "script"
}

// PowerUpConfig contains power-up configuration
type PowerUpConfig struct {
	CollisionWidth  int
	CollisionHeight int
	Score           int
	HoverHeight     float32 // pixels
	HoverDuration   float32 // seconds per half cycle
}

// SpriteSheetConfig describes one sprite sheet registered with the catalog at startup
type SpriteSheetConfig struct {
	Type       string
	Path       string
	TileWidth  int
	TileHeight int
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin               float64
	LineHeight           float64
	TextColor            color.RGBA
	ShadowColor          color.RGBA
	GameOverBannerFrames int
	GameOverColor        color.RGBA
	ChatColor            color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// NetworkConfig contains presence relay settings shared by client and server
type NetworkConfig struct {
	DefaultRelayAddress string
	PositionInterval    int // ticks between position updates
	ChatTTL             time.Duration
	MaxNameLength       int
	MaxChatLength       int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	ShowHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var PowerUp PowerUpConfig
var Sprites []SpriteSheetConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Network NetworkConfig
var Debug DebugConfig

// Level is the embedded map loaded at startup
var Level = "levels/level1.tmx"

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Night        = color.RGBA{R: 18, G: 20, B: 34, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Sprite types registered with the catalog
const (
	SpritePlayer  = "player"
	SpriteEnemy   = "enemy"
	SpritePowerUp = "powerup"
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed: 2.5,
		JumpSpeed: 7.0,

		Gravity:      0.35,
		MaxFallSpeed: 8.0,

		StartingLives: 3,

		InvincibilityDuration: 5000 * time.Millisecond,
		SpeedBoostDuration:    5000 * time.Millisecond,
		SpeedBoostMultiplier:  1.8,

		CollisionWidth:  16,
		CollisionHeight: 16,

		DefaultSpawnX: 32,
		DefaultSpawnY: 32,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:     1.0,
		PatrolDistance:  48,
		Gravity:         0.35,
		MaxFallSpeed:    8.0,
		CollisionWidth:  16,
		CollisionHeight: 16,
		Score:           50,
		DefaultStrategy: "none",
	}

	PowerUp = PowerUpConfig{
		CollisionWidth:  12,
		CollisionHeight: 12,
		Score:           100,
		HoverHeight:     4,
		HoverDuration:   0.8,
	}

	Sprites = []SpriteSheetConfig{
		{Type: SpritePlayer, Path: "images/player.png", TileWidth: 16, TileHeight: 16},
		{Type: SpriteEnemy, Path: "images/enemy.png", TileWidth: 16, TileHeight: 16},
		{Type: SpritePowerUp, Path: "images/powerups.png", TileWidth: 16, TileHeight: 16},
	}

	HUD = HUDConfig{
		Margin:               8,
		LineHeight:           14,
		TextColor:            White,
		ShadowColor:          Shadow,
		GameOverBannerFrames: 120,
		GameOverColor:        Red,
		ChatColor:            Yellow,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P: Resume   R: Restart   Enter: Menu",
	}

	Menu = MenuConfig{
		BackgroundColor:   Night,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "PIXELRUN",
		TitleY:            90,
		MenuStartY:        150,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		MenuOptions:       []string{"PLAY", "PLAY ONLINE", "EXIT"},
	}

	Network = NetworkConfig{
		DefaultRelayAddress: "localhost:7373",
		PositionInterval:    3,
		ChatTTL:             30 * time.Second,
		MaxNameLength:       16,
		MaxChatLength:       120,
	}
}
