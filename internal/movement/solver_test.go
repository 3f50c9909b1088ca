package movement

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMoveTowardsNeverOvershoots(t *testing.T) {
	values := []float32{-7, -1, -0.1, 0, 0.05, 0.2, 3, 12}
	deltas := []float32{0, 0.01, 0.2, 1, 50}

	for _, current := range values {
		for _, target := range values {
			for _, maxDelta := range deltas {
				got := MoveTowards(current, target, maxDelta)

				lo, hi := current, target
				if lo > hi {
					lo, hi = hi, lo
				}
				if got < lo || got > hi {
					t.Errorf("MoveTowards(%g, %g, %g) = %g, outside [%g, %g]", current, target, maxDelta, got, lo, hi)
				}
				if math32.Abs(target-current) <= maxDelta && got != target {
					t.Errorf("MoveTowards(%g, %g, %g) = %g, expected snap to target", current, target, maxDelta, got)
				}
			}
		}
	}
}

func TestSafeNormalizeDegenerate(t *testing.T) {
	if got := SafeNormalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := SafeNormalize(mgl32.Vec3{math32.NaN(), 0, 0}); got != (mgl32.Vec3{}) {
		t.Errorf("Expected zero vector for NaN input, got %v", got)
	}
	if got := SafeNormalize(mgl32.Vec3{0, 3, 4}); !approxVec(got, mgl32.Vec3{0, 0.6, 0.8}) {
		t.Errorf("Expected (0,0.6,0.8), got %v", got)
	}
}

func TestRefreshSingleContactKeepsNormal(t *testing.T) {
	c, _ := newTestController(t, mustConfig(t, 10, 10, 1, 2, 0, 40), mgl32.Vec3{})
	n := mgl32.Vec3{0, 0.8, 0.6}
	c.OnContact(n)

	c.refresh()

	if c.ContactNormal() != n {
		t.Errorf("Expected normal %v unchanged, got %v", n, c.ContactNormal())
	}
}

func TestRefreshMultipleContactsIsOrderIndependent(t *testing.T) {
	cfg := mustConfig(t, 10, 10, 1, 2, 0, 40)
	normals := []mgl32.Vec3{
		{0, 1, 0},
		{0, 0.8, 0.6},
		{0.6, 0.8, 0},
	}

	forward, _ := newTestController(t, cfg, mgl32.Vec3{})
	for _, n := range normals {
		forward.OnContact(n)
	}
	forward.refresh()

	backward, _ := newTestController(t, cfg, mgl32.Vec3{})
	for i := len(normals) - 1; i >= 0; i-- {
		backward.OnContact(normals[i])
	}
	backward.refresh()

	want := SafeNormalize(mgl32.Vec3{0.6, 2.6, 0.6})
	if !approxVec(forward.ContactNormal(), want) {
		t.Errorf("Expected %v, got %v", want, forward.ContactNormal())
	}
	if !approxVec(forward.ContactNormal(), backward.ContactNormal()) {
		t.Errorf("Order changed the normal: %v vs %v", forward.ContactNormal(), backward.ContactNormal())
	}
	if !approx(forward.ContactNormal().Len(), 1) {
		t.Errorf("Expected unit normal, got length %f", forward.ContactNormal().Len())
	}
}

func TestRefreshAirborneUsesUp(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig(), mgl32.Vec3{0, -3, 0})
	c.OnContact(mgl32.Vec3{1, 0, 0})

	c.refresh()

	if c.ContactNormal() != Up {
		t.Errorf("Expected up normal while airborne, got %v", c.ContactNormal())
	}
	if c.velocity != (mgl32.Vec3{0, -3, 0}) {
		t.Errorf("refresh should read the body velocity, got %v", c.velocity)
	}
}

func TestBlendOneStep(t *testing.T) {
	c, _ := newTestController(t, mustConfig(t, 5, 10, 1, 2, 0, 25), mgl32.Vec3{})
	c.SampleInput(1, 0, false)
	c.OnContact(Up)

	c.refresh()
	c.blend(0.02)

	if !approx(c.velocity.X(), 0.2) {
		t.Errorf("Expected x velocity 0.2, got %f", c.velocity.X())
	}
	if c.velocity.Y() != 0 || c.velocity.Z() != 0 {
		t.Errorf("Expected no change on y and z, got %v", c.velocity)
	}
}

func TestBlendUsesAirAcceleration(t *testing.T) {
	c, _ := newTestController(t, mustConfig(t, 5, 10, 1, 2, 0, 25), mgl32.Vec3{0, -4, 0})
	c.SampleInput(1, 0, false)

	c.refresh()
	c.blend(0.02)

	if !approx(c.velocity.X(), 0.02) {
		t.Errorf("Expected x velocity 0.02 in the air, got %f", c.velocity.X())
	}
	if c.velocity.Y() != -4 {
		t.Errorf("Vertical velocity should be untouched, got %f", c.velocity.Y())
	}
}

func TestBlendFollowsSlope(t *testing.T) {
	c, _ := newTestController(t, mustConfig(t, 5, 10, 1, 2, 0, 50), mgl32.Vec3{})
	n := SafeNormalize(mgl32.Vec3{0, 1, 1})
	c.SampleInput(0, 1, false)
	c.OnContact(n)

	c.refresh()
	c.blend(0.02)

	if !approx(c.velocity.Dot(n), 0) {
		t.Errorf("Velocity should stay in the slope plane, got dot %f", c.velocity.Dot(n))
	}
	if !approx(c.velocity.Len(), 0.2) {
		t.Errorf("Expected speed 0.2 along the slope, got %f", c.velocity.Len())
	}
	if c.velocity.Y() >= 0 {
		t.Errorf("Moving forward on this slope should head downhill, got %v", c.velocity)
	}
}

func TestBlendSnapsToDesired(t *testing.T) {
	c, _ := newTestController(t, mustConfig(t, 5, 10, 1, 2, 0, 25), mgl32.Vec3{4.9, 0, 0})
	c.SampleInput(1, 0, false)
	c.OnContact(Up)

	c.refresh()
	c.blend(0.02)

	if c.velocity.X() != 5 {
		t.Errorf("Expected exact snap to 5, got %f", c.velocity.X())
	}
}
