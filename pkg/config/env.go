package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/opd-ai/go-shipmotor/pkg/input"
)

// Environment variables that override file configuration.
const (
	EnvTurnSpeed = "SHIP_TURN_SPEED"
	EnvMoveSpeed = "SHIP_MOVE_SPEED"
	EnvInputType = "SHIP_INPUT_TYPE"
	EnvAISeed    = "SHIP_AI_SEED"
	EnvFrameRate = "SHIP_FRAME_RATE"
	EnvShips     = "SHIP_COUNT"
	EnvWorkers   = "SHIP_WORKERS"
)

// ApplyEnvironmentOverrides replaces config values with any SHIP_* variables
// that are set, then validates the result.
func ApplyEnvironmentOverrides(config *Config) error {
	var err error

	if config.Ship.TurnSpeed, err = getEnvFloat(EnvTurnSpeed, config.Ship.TurnSpeed); err != nil {
		return err
	}
	if config.Ship.MoveSpeed, err = getEnvFloat(EnvMoveSpeed, config.Ship.MoveSpeed); err != nil {
		return err
	}
	if value, ok := os.LookupEnv(EnvInputType); ok && value != "" {
		kind, err := input.ParseKind(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvInputType, err)
		}
		config.Ship.InputType = kind
	}
	if config.Ship.AISeed, err = getEnvUint(EnvAISeed, config.Ship.AISeed); err != nil {
		return err
	}
	if config.Simulation.FrameRate, err = getEnvInt(EnvFrameRate, config.Simulation.FrameRate); err != nil {
		return err
	}
	if config.Simulation.Ships, err = getEnvInt(EnvShips, config.Simulation.Ships); err != nil {
		return err
	}
	if config.Simulation.Workers, err = getEnvInt(EnvWorkers, config.Simulation.Workers); err != nil {
		return err
	}

	return config.Validate()
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvUint(key string, fallback uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
