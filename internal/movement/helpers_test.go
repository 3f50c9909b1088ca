package movement

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

type fakeBody struct {
	velocity mgl32.Vec3
	writes   int
}

func (b *fakeBody) Velocity() mgl32.Vec3 { return b.velocity }

func (b *fakeBody) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
	b.writes++
}

type fixedGravity mgl32.Vec3

func (g fixedGravity) Gravity() mgl32.Vec3 { return mgl32.Vec3(g) }

var earth = fixedGravity{0, -9.81, 0}

func newTestController(t *testing.T, cfg Config, velocity mgl32.Vec3) (*Controller, *fakeBody) {
	t.Helper()
	body := &fakeBody{velocity: velocity}
	return New(cfg, body, earth), body
}

func mustConfig(t *testing.T, maxSpeed, maxAccel, maxAirAccel, jumpHeight float32, airJumps int, angle float32) Config {
	t.Helper()
	cfg, err := NewConfig(maxSpeed, maxAccel, maxAirAccel, jumpHeight, airJumps, angle)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func approxVec(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, tolerance)
}
