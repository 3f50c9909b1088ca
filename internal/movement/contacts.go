package movement

import "github.com/go-gl/mathgl/mgl32"

// Contacts accumulates the ground contacts reported during one physics step.
// The zero value is an empty accumulator.
type Contacts struct {
	normal mgl32.Vec3
	count  int
}

// Add counts normal as ground when normal.Y >= minGroundDot and folds it into the running sum.
// Steeper normals (walls, ceilings) are ignored. It reports whether the normal qualified.
func (c *Contacts) Add(normal mgl32.Vec3, minGroundDot float32) bool {
	if normal.Y() < minGroundDot {
		return false
	}
	c.count++
	c.normal = c.normal.Add(normal)
	return true
}

// Count is the number of qualifying contacts this step.
func (c *Contacts) Count() int {
	return c.count
}

// OnGround reports whether at least one ground contact was seen.
func (c *Contacts) OnGround() bool {
	return c.count > 0
}

// Sum is the unnormalized sum of the qualifying normals.
func (c *Contacts) Sum() mgl32.Vec3 {
	return c.normal
}

// Clear empties the accumulator for the next step.
func (c *Contacts) Clear() {
	c.count = 0
	c.normal = mgl32.Vec3{}
}
