// Package config loads the YAML tuning file for the sphere demo and watches it for edits.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"movingsphere/internal/movement"
)

// ErrInvalid is wrapped by every validation failure outside the movement tunables.
var ErrInvalid = errors.New("config: invalid value")

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type Movement struct {
	MaxSpeed           float32 `yaml:"maxSpeed"`
	MaxAcceleration    float32 `yaml:"maxAcceleration"`
	MaxAirAcceleration float32 `yaml:"maxAirAcceleration"`
	JumpHeight         float32 `yaml:"jumpHeight"`
	MaxAirJumps        int     `yaml:"maxAirJumps"`
	MaxGroundAngle     float32 `yaml:"maxGroundAngle"`
}

type Physics struct {
	Gravity   Vec3    `yaml:"gravity"`
	FixedStep float32 `yaml:"fixedStep"`
}

type Player struct {
	Radius float32 `yaml:"radius"`
	Spawn  Vec3    `yaml:"spawn"`
}

// File is the parsed tuning file.
type File struct {
	Movement Movement `yaml:"movement"`
	Physics  Physics  `yaml:"physics"`
	Player   Player   `yaml:"player"`
	LogLevel string   `yaml:"logLevel"`
}

// Default returns the tuning used when no file is given. Fields missing from a file keep
// these values.
func Default() *File {
	d := movement.DefaultConfig()
	return &File{
		Movement: Movement{
			MaxSpeed:           d.MaxSpeed,
			MaxAcceleration:    d.MaxAcceleration,
			MaxAirAcceleration: d.MaxAirAcceleration,
			JumpHeight:         d.JumpHeight,
			MaxAirJumps:        d.MaxAirJumps,
			MaxGroundAngle:     d.MaxGroundAngle,
		},
		Physics: Physics{
			Gravity:   Vec3{Y: -9.81},
			FixedStep: 0.02,
		},
		Player: Player{
			Radius: 0.5,
			Spawn:  Vec3{Y: 3},
		},
		LogLevel: "info",
	}
}

// Load reads and validates the tuning file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML tuning data on top of Default.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks every section. Movement tunables are checked by movement.NewConfig.
func (f *File) Validate() error {
	if _, err := f.MovementConfig(); err != nil {
		return err
	}
	if f.Physics.FixedStep <= 0 || f.Physics.FixedStep > 0.1 {
		return fmt.Errorf("%w: physics.fixedStep = %g, want (0, 0.1]", ErrInvalid, f.Physics.FixedStep)
	}
	if f.Physics.Gravity.Y >= 0 {
		return fmt.Errorf("%w: physics.gravity.y = %g, gravity must point down", ErrInvalid, f.Physics.Gravity.Y)
	}
	if f.Player.Radius <= 0 {
		return fmt.Errorf("%w: player.radius = %g, want > 0", ErrInvalid, f.Player.Radius)
	}
	if _, err := logrus.ParseLevel(f.LogLevel); err != nil {
		return fmt.Errorf("%w: logLevel: %v", ErrInvalid, err)
	}
	return nil
}

// MovementConfig builds the controller tuning from the movement section.
func (f *File) MovementConfig() (movement.Config, error) {
	m := f.Movement
	cfg, err := movement.NewConfig(m.MaxSpeed, m.MaxAcceleration, m.MaxAirAcceleration, m.JumpHeight, m.MaxAirJumps, m.MaxGroundAngle)
	if err != nil {
		return movement.Config{}, fmt.Errorf("movement: %w", err)
	}
	return cfg, nil
}

// Level returns the parsed log level, falling back to info.
func (f *File) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(f.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
