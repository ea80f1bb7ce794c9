package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvyne/strider/internal/locomotion"
	"github.com/rvyne/strider/internal/terrain"
)

type Config struct {
	Logging LoggingConfig           `yaml:"logging"`
	Motion  locomotion.Parameters   `yaml:"motion"`
	Terrain terrain.GenerateOptions `yaml:"terrain"`
	Sandbox SandboxConfig           `yaml:"sandbox"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SandboxConfig struct {
	// TickRate is physics ticks per second.
	TickRate       float64 `yaml:"tick_rate"`
	CameraYawDeg   float64 `yaml:"camera_yaw_deg"`
	AbilityImpulse float64 `yaml:"ability_impulse"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console", File: "strider.log"},
		Motion:  locomotion.DefaultParameters(),
		Terrain: terrain.DefaultGenerateOptions(),
		Sandbox: SandboxConfig{TickRate: 50, CameraYawDeg: 0, AbilityImpulse: 12},
	}
}

// Load reads path over the defaults, so a partial file only overrides the
// fields it names. Malformed numeric tuning is rejected here rather than
// surfacing as a runtime fault.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Motion.Validate(); err != nil {
		return err
	}
	if c.Sandbox.TickRate <= 0 {
		return fmt.Errorf("sandbox tick_rate must be positive, got %v", c.Sandbox.TickRate)
	}
	return nil
}

// Warnings reports degenerate but survivable settings; callers log them once
// the logger is up.
func (c *Config) Warnings() []string {
	return c.Motion.Warnings()
}
