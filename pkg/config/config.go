// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-shipmotor/pkg/input"
	"github.com/opd-ai/go-shipmotor/pkg/motor"
)

// ErrInvalidSettings is returned by Validate for settings a ship cannot run with.
var ErrInvalidSettings = errors.New("invalid settings")

// Config is the top-level configuration file.
type Config struct {
	Ship       ShipSettings     `json:"ship" yaml:"ship"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
}

// ShipSettings is the per-ship configuration asset.
type ShipSettings struct {
	TurnSpeed float64    `json:"turnSpeed" yaml:"turnSpeed"`
	MoveSpeed float64    `json:"moveSpeed" yaml:"moveSpeed"`
	InputType input.Kind `json:"inputType" yaml:"inputType"`
	// AISeed seeds AI providers deterministically; 0 means unseeded.
	AISeed uint64 `json:"aiSeed,omitempty" yaml:"aiSeed,omitempty"`
}

// SimulationConfig controls the headless frame scheduler.
type SimulationConfig struct {
	FrameRate    int     `json:"frameRate" yaml:"frameRate"`
	MaxDeltaTime float64 `json:"maxDeltaTime" yaml:"maxDeltaTime"`
	Ships        int     `json:"ships" yaml:"ships"`
	Workers      int     `json:"workers" yaml:"workers"`
}

// Speed returns the motor speed configuration for these settings.
func (s *ShipSettings) Speed() *motor.SpeedConfig {
	return &motor.SpeedConfig{
		TurnSpeed: s.TurnSpeed,
		MoveSpeed: s.MoveSpeed,
	}
}

// Validate checks that speeds are finite and the input type is known.
// Zero speeds are valid.
func (s *ShipSettings) Validate() error {
	if math.IsNaN(s.TurnSpeed) || math.IsInf(s.TurnSpeed, 0) {
		return fmt.Errorf("%w: turnSpeed must be finite, got %v", ErrInvalidSettings, s.TurnSpeed)
	}
	if math.IsNaN(s.MoveSpeed) || math.IsInf(s.MoveSpeed, 0) {
		return fmt.Errorf("%w: moveSpeed must be finite, got %v", ErrInvalidSettings, s.MoveSpeed)
	}
	if !s.InputType.Valid() {
		return fmt.Errorf("%w: %w: %s", ErrInvalidSettings, input.ErrUnsupportedProviderKind, s.InputType)
	}
	return nil
}

// Validate checks the ship settings and simulation bounds.
func (c *Config) Validate() error {
	if err := c.Ship.Validate(); err != nil {
		return err
	}
	sim := c.Simulation
	if sim.FrameRate <= 0 {
		return fmt.Errorf("%w: frameRate must be positive, got %d", ErrInvalidSettings, sim.FrameRate)
	}
	if sim.MaxDeltaTime <= 0 || math.IsInf(sim.MaxDeltaTime, 0) || math.IsNaN(sim.MaxDeltaTime) {
		return fmt.Errorf("%w: maxDeltaTime must be positive, got %v", ErrInvalidSettings, sim.MaxDeltaTime)
	}
	if sim.Ships < 0 {
		return fmt.Errorf("%w: ships must not be negative, got %d", ErrInvalidSettings, sim.Ships)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidSettings, sim.Workers)
	}
	return nil
}

// DefaultSettings returns the stock ship: turn 25, move 10, AI input.
func DefaultSettings() ShipSettings {
	return ShipSettings{
		TurnSpeed: 25,
		MoveSpeed: 10,
		InputType: input.KindAI,
	}
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Ship: DefaultSettings(),
		Simulation: SimulationConfig{
			FrameRate:    60,
			MaxDeltaTime: 0.1,
			Ships:        1,
			Workers:      0,
		},
	}
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// LoadConfig reads a configuration file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch formatFor(path) {
	case formatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to path in the format implied by its extension.
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("failed to marshal config: %w", ErrInvalidSettings)
	}

	var (
		data []byte
		err  error
	)
	switch formatFor(path) {
	case formatYAML:
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
