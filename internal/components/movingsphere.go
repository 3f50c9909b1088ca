package components

import (
	"movingsphere/internal/engine"
	"movingsphere/internal/movement"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// MovingSphere drives a Rigidbody with a movement.Controller. Input is sampled in Update,
// contacts arrive through the collision callbacks, and the controller steps in FixedUpdate.
type MovingSphere struct {
	engine.BaseComponent
	Input InputSource

	ctrl *movement.Controller
	log  logrus.FieldLogger
	last movement.StepReport
}

// NewMovingSphere wires a controller to rb. gravity is queried on every jump.
func NewMovingSphere(rb *Rigidbody, cfg movement.Config, gravity func() rl.Vector3, input InputSource, log logrus.FieldLogger) *MovingSphere {
	m := &MovingSphere{
		Input: input,
		log:   log,
	}
	m.ctrl = movement.New(cfg, rigidbodyBody{rb}, gravityFunc(gravity), movement.WithLogger(log))
	return m
}

func (m *MovingSphere) Update(deltaTime float32) {
	if m.Input == nil {
		return
	}
	x, y := m.Input.Axes()
	m.ctrl.SampleInput(x, y, m.Input.JumpPressed())
}

func (m *MovingSphere) FixedUpdate(deltaTime float32) {
	m.last = m.ctrl.Step(deltaTime)
	if m.last.Landed && m.log != nil {
		m.log.WithField("object", m.GetGameObject().Name).Info("sphere landed")
	}
}

func (m *MovingSphere) OnCollisionEnter(c engine.Collision) {
	m.evaluateCollision(c)
}

func (m *MovingSphere) OnCollisionStay(c engine.Collision) {
	m.evaluateCollision(c)
}

func (m *MovingSphere) OnCollisionExit(other *engine.GameObject) {}

func (m *MovingSphere) evaluateCollision(c engine.Collision) {
	for _, contact := range c.Contacts {
		m.ctrl.OnContact(toVec3(contact.Normal))
	}
}

// Controller exposes the underlying controller for HUDs and tests.
func (m *MovingSphere) Controller() *movement.Controller {
	return m.ctrl
}

// LastStep returns the report of the most recent FixedUpdate.
func (m *MovingSphere) LastStep() movement.StepReport {
	return m.last
}

// GroundContactCount implements TintSource.
func (m *MovingSphere) GroundContactCount() int {
	return m.ctrl.GroundContactCount()
}

// SetConfig swaps the controller tuning.
func (m *MovingSphere) SetConfig(cfg movement.Config) {
	m.ctrl.SetConfig(cfg)
}

type rigidbodyBody struct {
	rb *Rigidbody
}

func (b rigidbodyBody) Velocity() mgl32.Vec3 {
	return toVec3(b.rb.Velocity)
}

func (b rigidbodyBody) SetVelocity(v mgl32.Vec3) {
	b.rb.Velocity = fromVec3(v)
}

type gravityFunc func() rl.Vector3

func (f gravityFunc) Gravity() mgl32.Vec3 {
	return toVec3(f())
}

func toVec3(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
