package movement

import "github.com/chewxy/math32"

// JumpResult describes the outcome of one jump attempt.
type JumpResult struct {
	Attempted bool
	Jumped    bool
	Speed     float32 // impulse applied along the contact normal
	Phase     int     // jump phase after the attempt
}

// JumpSpeed is the launch speed needed to peak at height under gravityY (negative is down).
// Upward or zero gravity clamps the result to zero.
func JumpSpeed(gravityY, height float32) float32 {
	radicand := -2 * gravityY * height
	if radicand <= 0 {
		return 0
	}
	return math32.Sqrt(radicand)
}

// tryJump applies a jump along the working contact normal when the body is grounded or still
// has air jumps left. Existing velocity along the normal is subtracted from the impulse so the
// jump never peaks higher than the configured height.
func (c *Controller) tryJump(gravityY float32) JumpResult {
	res := JumpResult{Attempted: true, Phase: c.jumpPhase}
	if !c.contacts.OnGround() && c.jumpPhase >= c.cfg.MaxAirJumps {
		return res
	}

	c.jumpPhase++
	jumpSpeed := JumpSpeed(gravityY, c.cfg.JumpHeight)
	alignedSpeed := c.velocity.Dot(c.normal)
	if alignedSpeed > 0 {
		jumpSpeed = math32.Max(jumpSpeed-alignedSpeed, 0)
	}
	impulse := c.normal.Mul(jumpSpeed)
	c.velocity = c.velocity.Add(impulse)

	// Opposing contacts can cancel to a zero normal; the jump is spent but adds nothing.
	res.Jumped = true
	res.Speed = impulse.Len()
	res.Phase = c.jumpPhase
	return res
}
