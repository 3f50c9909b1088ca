package game

// FixedClock converts variable frame times into a whole number of fixed physics steps.
type FixedClock struct {
	Step     float32
	MaxSteps int // cap per frame so a long hitch does not spiral

	accumulator float32
}

func NewFixedClock(step float32) *FixedClock {
	return &FixedClock{Step: step, MaxSteps: 8}
}

// Advance adds frameTime and returns how many fixed steps are now due.
func (c *FixedClock) Advance(frameTime float32) int {
	c.accumulator += frameTime
	steps := 0
	for c.accumulator >= c.Step && steps < c.MaxSteps {
		c.accumulator -= c.Step
		steps++
	}
	if steps == c.MaxSteps && c.accumulator >= c.Step {
		c.accumulator = 0
	}
	return steps
}

// Alpha is how far the clock is into the next step, in [0, 1).
func (c *FixedClock) Alpha() float32 {
	return c.accumulator / c.Step
}
