package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Right   = mgl32.Vec3{1, 0, 0}
	Forward = mgl32.Vec3{0, 0, 1}
)

// normalizeEpsilon is the shortest vector SafeNormalize will scale to unit length.
const normalizeEpsilon = 1e-6

// SafeNormalize returns v scaled to unit length, or the zero vector when v is too short (or
// not finite) to have a direction.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the component of v along the plane normal n. n must be unit length.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// MoveTowards moves current toward target by at most maxDelta and never past it.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// refresh pulls the body's velocity and derives the working contact normal from the
// accumulated contacts. It returns true when the body landed this step.
func (c *Controller) refresh() bool {
	c.velocity = c.body.Velocity()

	landed := false
	if c.contacts.OnGround() {
		landed = !c.wasGrounded
		c.jumpPhase = 0
		c.normal = c.contacts.Sum()
		if c.contacts.Count() > 1 {
			c.normal = SafeNormalize(c.normal)
		}
	} else {
		c.normal = Up
	}
	c.wasGrounded = c.contacts.OnGround()
	return landed
}

// blend steers the velocity along the contact plane toward the desired velocity.
// Any component along the contact normal is left untouched.
func (c *Controller) blend(dt float32) {
	xAxis := SafeNormalize(ProjectOnPlane(Right, c.normal))
	zAxis := SafeNormalize(ProjectOnPlane(Forward, c.normal))

	currentX := c.velocity.Dot(xAxis)
	currentZ := c.velocity.Dot(zAxis)

	acceleration := c.cfg.MaxAirAcceleration
	if c.contacts.OnGround() {
		acceleration = c.cfg.MaxAcceleration
	}
	maxSpeedChange := acceleration * dt

	desired := c.input.Desired()
	newX := MoveTowards(currentX, desired.X(), maxSpeedChange)
	newZ := MoveTowards(currentZ, desired.Z(), maxSpeedChange)

	c.velocity = c.velocity.
		Add(xAxis.Mul(newX - currentX)).
		Add(zAxis.Mul(newZ - currentZ))
}
