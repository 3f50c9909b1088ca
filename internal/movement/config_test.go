package movement

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxSpeed != 10 || cfg.MaxAcceleration != 10 || cfg.MaxAirAcceleration != 1 {
		t.Errorf("Unexpected speed tuning: %+v", cfg)
	}
	if cfg.JumpHeight != 2 || cfg.MaxAirJumps != 0 || cfg.MaxGroundAngle != 25 {
		t.Errorf("Unexpected jump tuning: %+v", cfg)
	}

	want := math32.Cos(25 * math32.Pi / 180)
	if !approx(cfg.MinGroundDot(), want) {
		t.Errorf("Expected MinGroundDot %f, got %f", want, cfg.MinGroundDot())
	}
}

func TestNewConfigGroundAngleBounds(t *testing.T) {
	flat := mustConfig(t, 10, 10, 1, 2, 0, 0)
	if !approx(flat.MinGroundDot(), 1) {
		t.Errorf("Expected MinGroundDot 1 for 0 degrees, got %f", flat.MinGroundDot())
	}

	vertical := mustConfig(t, 10, 10, 1, 2, 0, 90)
	if !approx(vertical.MinGroundDot(), 0) {
		t.Errorf("Expected MinGroundDot 0 for 90 degrees, got %f", vertical.MinGroundDot())
	}
}

func TestNewConfigRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		build func() (Config, error)
		field string
	}{
		{"speed", func() (Config, error) { return NewConfig(101, 10, 1, 2, 0, 25) }, "maxSpeed"},
		{"negative accel", func() (Config, error) { return NewConfig(10, -1, 1, 2, 0, 25) }, "maxAcceleration"},
		{"air accel", func() (Config, error) { return NewConfig(10, 10, 200, 2, 0, 25) }, "maxAirAcceleration"},
		{"jump height", func() (Config, error) { return NewConfig(10, 10, 1, 11, 0, 25) }, "jumpHeight"},
		{"air jumps", func() (Config, error) { return NewConfig(10, 10, 1, 2, 6, 25) }, "maxAirJumps"},
		{"ground angle", func() (Config, error) { return NewConfig(10, 10, 1, 2, 0, 91) }, "maxGroundAngle"},
		{"nan", func() (Config, error) { return NewConfig(math32.NaN(), 10, 1, 2, 0, 25) }, "maxSpeed"},
		{"inf", func() (Config, error) { return NewConfig(10, 10, 1, math32.Inf(1), 0, 25) }, "jumpHeight"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Expected ErrOutOfRange, got %v", err)
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Expected *RangeError, got %T", err)
			}
			if rangeErr.Field != tc.field {
				t.Errorf("Expected field %q, got %q", tc.field, rangeErr.Field)
			}
		})
	}
}
