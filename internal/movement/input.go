package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sampler turns raw axis input into a desired horizontal velocity and latches jump presses
// until a physics step consumes them.
type Sampler struct {
	desired       mgl32.Vec3
	jumpRequested bool
}

// Sample records one frame of input. The axis pair is clamped to the unit disk and scaled by
// maxSpeed; jumpPressed is OR'd into the latch and never clears it.
func (s *Sampler) Sample(axisX, axisY, maxSpeed float32, jumpPressed bool) {
	x, y := ClampMagnitude(axisX, axisY, 1)
	s.desired = mgl32.Vec3{x * maxSpeed, 0, y * maxSpeed}
	s.jumpRequested = s.jumpRequested || jumpPressed
}

// Desired returns the last sampled target velocity. Its Y component is always zero.
func (s *Sampler) Desired() mgl32.Vec3 {
	return s.desired
}

// JumpRequested reports whether a jump press is waiting to be consumed.
func (s *Sampler) JumpRequested() bool {
	return s.jumpRequested
}

// consumeJump clears the latch and reports whether it was set.
func (s *Sampler) consumeJump() bool {
	requested := s.jumpRequested
	s.jumpRequested = false
	return requested
}

// ClampMagnitude scales (x, y) down to length max when it is longer, and returns it unchanged
// otherwise.
func ClampMagnitude(x, y, max float32) (float32, float32) {
	sq := x*x + y*y
	if sq <= max*max {
		return x, y
	}
	scale := max / math32.Sqrt(sq)
	return x * scale, y * scale
}
