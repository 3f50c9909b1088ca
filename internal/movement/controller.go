// Package movement implements a rigid-body locomotion controller: it turns directional input
// into a target velocity along the ground plane, classifies contacts as ground by slope, and
// resolves jumps (including a limited number of air jumps) along the contact normal.
//
// The controller is engine agnostic. The host supplies the body's velocity, the world gravity
// and contact normals, and calls Step once per physics step.
package movement

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Body is the physics body driven by the controller. Velocity is read once at the start of a
// step and SetVelocity is called once at the end.
type Body interface {
	Velocity() mgl32.Vec3
	SetVelocity(v mgl32.Vec3)
}

// GravitySource supplies the world gravity. Only the Y component is used and it is expected
// to point down.
type GravitySource interface {
	Gravity() mgl32.Vec3
}

// Phase is the position of the controller inside a physics step.
type Phase int

const (
	ContactsAccumulated Phase = iota
	StateRefreshed
	VelocityBlended
	JumpResolved
	Committed
	Cleared
)

func (p Phase) String() string {
	switch p {
	case ContactsAccumulated:
		return "contacts-accumulated"
	case StateRefreshed:
		return "state-refreshed"
	case VelocityBlended:
		return "velocity-blended"
	case JumpResolved:
		return "jump-resolved"
	case Committed:
		return "committed"
	case Cleared:
		return "cleared"
	}
	return "unknown"
}

// StepReport summarizes a finished step.
type StepReport struct {
	OnGround bool
	Landed   bool
	Contacts int
	Normal   mgl32.Vec3
	Velocity mgl32.Vec3
	Jump     JumpResult
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for landing and jump events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller drives a Body. It is not safe for concurrent use: SampleInput, OnContact and Step
// must be called from the same goroutine, which is how engine loops invoke them.
type Controller struct {
	cfg     Config
	body    Body
	gravity GravitySource
	log     logrus.FieldLogger

	input    Sampler
	contacts Contacts

	velocity    mgl32.Vec3
	normal      mgl32.Vec3
	jumpPhase   int
	wasGrounded bool
	phase       Phase
	lastCount   int
}

// New creates a controller for body using cfg.
func New(cfg Config, body Body, gravity GravitySource, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		cfg:     cfg,
		body:    body,
		gravity: gravity,
		log:     discard,
		normal:  Up,
		phase:   ContactsAccumulated,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SampleInput records one frame of input. Call it at frame rate; it never touches the body.
func (c *Controller) SampleInput(axisX, axisY float32, jumpPressed bool) {
	c.input.Sample(axisX, axisY, c.cfg.MaxSpeed, jumpPressed)
}

// OnContact reports one contact point normal for the current step. It may be called any number
// of times between steps.
func (c *Controller) OnContact(normal mgl32.Vec3) bool {
	c.phase = ContactsAccumulated
	return c.contacts.Add(normal, c.cfg.MinGroundDot())
}

// Step advances the controller by dt seconds.
//
// Precondition: every contact for this step has already been delivered through OnContact.
func (c *Controller) Step(dt float32) StepReport {
	landed := c.refresh()
	if landed {
		c.log.WithField("contacts", c.contacts.Count()).Debug("landed")
	}
	c.phase = StateRefreshed

	c.blend(dt)
	c.phase = VelocityBlended

	var jump JumpResult
	if c.input.consumeJump() {
		jump = c.tryJump(c.gravity.Gravity().Y())
		if jump.Jumped {
			c.log.WithFields(logrus.Fields{
				"phase": jump.Phase,
				"speed": jump.Speed,
			}).Debug("jump")
		} else {
			c.log.WithField("phase", jump.Phase).Debug("jump dropped")
		}
	}
	c.phase = JumpResolved

	c.body.SetVelocity(c.velocity)
	c.phase = Committed

	report := StepReport{
		OnGround: c.contacts.OnGround(),
		Landed:   landed,
		Contacts: c.contacts.Count(),
		Normal:   c.normal,
		Velocity: c.velocity,
		Jump:     jump,
	}

	c.lastCount = c.contacts.Count()
	c.contacts.Clear()
	c.phase = Cleared
	return report
}

// Phase returns where the controller is in the step cycle.
func (c *Controller) Phase() Phase {
	return c.phase
}

// GroundContactCount is the number of ground contacts seen by the last finished step, or by the
// step in progress once contacts start arriving. Presentation code may read it freely.
func (c *Controller) GroundContactCount() int {
	if c.contacts.Count() > 0 {
		return c.contacts.Count()
	}
	return c.lastCount
}

// OnGround reports whether the last step had ground contact.
func (c *Controller) OnGround() bool {
	return c.wasGrounded
}

// JumpPhase is the number of jumps since the body last touched ground.
func (c *Controller) JumpPhase() int {
	return c.jumpPhase
}

// ContactNormal is the working contact normal of the last step.
func (c *Controller) ContactNormal() mgl32.Vec3 {
	return c.normal
}

// DesiredVelocity is the target velocity from the last input sample.
func (c *Controller) DesiredVelocity() mgl32.Vec3 {
	return c.input.Desired()
}

// JumpRequested reports whether a jump is latched for the next step.
func (c *Controller) JumpRequested() bool {
	return c.input.JumpRequested()
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps in new tuning. It takes effect for the next input sample and step.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}
