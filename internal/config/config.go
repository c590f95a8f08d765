// Package config provides the tunable settings for the maze game.
// Settings are loaded from an optional JSON file and then overridden by
// MAZE_* environment variables (a .env file is honored if present).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"chosenoffset.com/mazewalk/internal/entity"
)

// Config holds every setting the game reads at startup.
type Config struct {
	Window WindowConfig `json:"window"`
	Maze   MazeConfig   `json:"maze"`
	Player PlayerConfig `json:"player"`
	Audio  AudioConfig  `json:"audio"`
	Debug  DebugConfig  `json:"debug"`
}

// WindowConfig defines the play area and frame rate.
type WindowConfig struct {
	Width  int    `json:"width"`  // Play area width in pixels
	Height int    `json:"height"` // Play area height in pixels
	TPS    int    `json:"tps"`    // Ticks per second
	Title  string `json:"title"`
}

// MazeConfig defines grid and generation settings.
type MazeConfig struct {
	TileSize      int      `json:"tile_size"`      // Cell edge in pixels
	WallThickness float64  `json:"wall_thickness"` // Collider half-thickness in pixels
	Seed          int64    `json:"seed"`           // 0 picks a time-based seed
	StepsPerTick  int      `json:"steps_per_tick"` // Generator steps per tick
	VictoryDelay  Duration `json:"victory_delay"`  // Pause after reaching the goal
}

// PlayerConfig defines movement.
type PlayerConfig struct {
	Speed  float64 `json:"speed"`  // Pixels per tick
	Policy string  `json:"policy"` // "clamp" or "bounce"
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Muted        bool    `json:"muted"`
	MusicVolume  float64 `json:"music_volume"`  // 0.0 to 1.0
	EffectVolume float64 `json:"effect_volume"` // 0.0 to 1.0
	SampleRate   int     `json:"sample_rate"`
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	ShowColliders bool `json:"show_colliders"`
}

// Duration is a time.Duration that reads "5s" style strings from JSON.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string or a number of milliseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d.Duration = parsed
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("duration must be a string or milliseconds: %w", err)
	}
	d.Duration = time.Duration(ms) * time.Millisecond
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DefaultConfig returns the classic settings: a 1202x902 area of 50px tiles.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1202,
			Height: 902,
			TPS:    60,
			Title:  "Maze Walk",
		},
		Maze: MazeConfig{
			TileSize:      50,
			WallThickness: 3,
			Seed:          0,
			StepsPerTick:  1,
			VictoryDelay:  Duration{5 * time.Second},
		},
		Player: PlayerConfig{
			Speed:  2,
			Policy: "clamp",
		},
		Audio: AudioConfig{
			Muted:        false,
			MusicVolume:  0.1,
			EffectVolume: 0.4,
			SampleRate:   44100,
		},
	}
}

// LoadConfig loads config from a JSON file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// ApplyEnv loads a .env file if one exists and applies MAZE_* overrides.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt("MAZE_WIDTH", &c.Window.Width)
	setInt("MAZE_HEIGHT", &c.Window.Height)
	setInt("MAZE_TPS", &c.Window.TPS)
	setInt("MAZE_TILE_SIZE", &c.Maze.TileSize)
	setFloat("MAZE_WALL_THICKNESS", &c.Maze.WallThickness)
	setInt("MAZE_STEPS_PER_TICK", &c.Maze.StepsPerTick)
	setFloat("MAZE_PLAYER_SPEED", &c.Player.Speed)
	setFloat("MAZE_MUSIC_VOLUME", &c.Audio.MusicVolume)
	setFloat("MAZE_EFFECT_VOLUME", &c.Audio.EffectVolume)
	setInt("MAZE_SAMPLE_RATE", &c.Audio.SampleRate)
	setBool("MAZE_MUTED", &c.Audio.Muted)
	setBool("MAZE_DEBUG_COLLIDERS", &c.Debug.ShowColliders)

	if v, ok := lookup("MAZE_SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED: %w", err))
		} else {
			c.Maze.Seed = seed
		}
	}
	if v, ok := lookup("MAZE_VICTORY_DELAY"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_VICTORY_DELAY: %w", err))
		} else {
			c.Maze.VictoryDelay = Duration{d}
		}
	}
	if v, ok := lookup("MAZE_POLICY"); ok {
		c.Player.Policy = v
	}
	if v, ok := lookup("MAZE_TITLE"); ok {
		c.Window.Title = v
	}

	return errors.Join(errs...)
}

// Validate reports every setting that would make the game unplayable.
func (c *Config) Validate() error {
	var errs []error

	if c.Maze.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", c.Maze.TileSize))
	} else {
		if c.Window.Width < c.Maze.TileSize || c.Window.Height < c.Maze.TileSize {
			errs = append(errs, fmt.Errorf("play area %dx%d is smaller than one %dpx tile",
				c.Window.Width, c.Window.Height, c.Maze.TileSize))
		}
		// A corridor is tile-2t wide and must be wider than the tile/2 player.
		if c.Maze.WallThickness <= 0 || c.Maze.WallThickness*4 >= float64(c.Maze.TileSize) {
			errs = append(errs, fmt.Errorf("wall_thickness %v must be in (0, %v)",
				c.Maze.WallThickness, float64(c.Maze.TileSize)/4))
		}
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Window.TPS))
	}
	if c.Maze.StepsPerTick <= 0 {
		errs = append(errs, fmt.Errorf("steps_per_tick must be positive, got %d", c.Maze.StepsPerTick))
	}
	if c.Maze.VictoryDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("victory_delay must not be negative, got %v", c.Maze.VictoryDelay))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %v", c.Player.Speed))
	}
	if _, err := entity.ParsePolicy(c.Player.Policy); err != nil {
		errs = append(errs, err)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("music_volume must be in [0, 1], got %v", c.Audio.MusicVolume))
	}
	if c.Audio.EffectVolume < 0 || c.Audio.EffectVolume > 1 {
		errs = append(errs, fmt.Errorf("effect_volume must be in [0, 1], got %v", c.Audio.EffectVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// Cols returns the number of whole tiles across the play area.
func (c *Config) Cols() int {
	return c.Window.Width / c.Maze.TileSize
}

// Rows returns the number of whole tiles down the play area.
func (c *Config) Rows() int {
	return c.Window.Height / c.Maze.TileSize
}

// PlayerPolicy returns the parsed collision policy. Call Validate first.
func (c *Config) PlayerPolicy() entity.Policy {
	p, _ := entity.ParsePolicy(c.Player.Policy)
	return p
}
