package movement

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrOutOfRange is wrapped by every RangeError returned from NewConfig.
var ErrOutOfRange = errors.New("movement: value out of range")

// RangeError reports a tunable that falls outside its designer range.
type RangeError struct {
	Field    string
	Value    float32
	Min, Max float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("movement: %s = %g, want [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Ranges accepted by NewConfig.
const (
	MaxSpeedLimit        = 100
	MaxAccelerationLimit = 100
	MaxJumpHeight        = 10
	MaxAirJumpsLimit     = 5
	MaxGroundAngleLimit  = 90
)

// Config holds the designer tunables. It is immutable once built; a change in tuning means
// building a new Config through NewConfig.
type Config struct {
	MaxSpeed           float32
	MaxAcceleration    float32
	MaxAirAcceleration float32
	JumpHeight         float32
	MaxAirJumps        int
	MaxGroundAngle     float32 // degrees

	minGroundDot float32
}

// NewConfig validates the tunables and caches the cosine of the ground angle.
func NewConfig(maxSpeed, maxAcceleration, maxAirAcceleration, jumpHeight float32, maxAirJumps int, maxGroundAngle float32) (Config, error) {
	checks := []struct {
		field string
		value float32
		max   float32
	}{
		{"maxSpeed", maxSpeed, MaxSpeedLimit},
		{"maxAcceleration", maxAcceleration, MaxAccelerationLimit},
		{"maxAirAcceleration", maxAirAcceleration, MaxAccelerationLimit},
		{"jumpHeight", jumpHeight, MaxJumpHeight},
		{"maxAirJumps", float32(maxAirJumps), MaxAirJumpsLimit},
		{"maxGroundAngle", maxGroundAngle, MaxGroundAngleLimit},
	}
	for _, c := range checks {
		if !inRange(c.value, 0, c.max) {
			return Config{}, &RangeError{Field: c.field, Value: c.value, Min: 0, Max: c.max}
		}
	}

	return Config{
		MaxSpeed:           maxSpeed,
		MaxAcceleration:    maxAcceleration,
		MaxAirAcceleration: maxAirAcceleration,
		JumpHeight:         jumpHeight,
		MaxAirJumps:        maxAirJumps,
		MaxGroundAngle:     maxGroundAngle,
		minGroundDot:       math32.Cos(maxGroundAngle * math32.Pi / 180),
	}, nil
}

// DefaultConfig returns the stock tuning: speed 10, ground acceleration 10, air acceleration 1,
// jump height 2, no air jumps and a 25 degree ground slope.
func DefaultConfig() Config {
	cfg, err := NewConfig(10, 10, 1, 2, 0, 25)
	if err != nil {
		panic(err)
	}
	return cfg
}

// MinGroundDot is the smallest normal.Y a contact may have and still count as ground.
func (c Config) MinGroundDot() float32 {
	return c.minGroundDot
}

func inRange(v, min, max float32) bool {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return false
	}
	return v >= min && v <= max
}
