package physics

import (
	"movingsphere/internal/components"
	"movingsphere/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// contactSkin keeps a resting sphere in contact across steps even when it sits exactly on
// the surface.
const contactSkin = 0.001

// CollisionPair represents a dynamic object touching a static one
type CollisionPair struct {
	A, B *engine.GameObject
}

// PhysicsWorld moves dynamic spheres under gravity and resolves them against static boxes.
// Every touching pair yields one contact whose normal points from the box to the sphere.
type PhysicsWorld struct {
	Gravity rl.Vector3
	Objects []*engine.GameObject // dynamic rigidbodies with sphere colliders
	Statics []*engine.GameObject // box colliders without rigidbody (floor, ramps, walls)

	log logrus.FieldLogger

	// Collision tracking for callbacks
	activeCollisions  map[CollisionPair]bool                 // collisions from last step
	currentCollisions map[CollisionPair][]engine.ContactPoint // collisions this step
	order             []CollisionPair                         // currentCollisions in detection order
}

func NewPhysicsWorld(log logrus.FieldLogger) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:           make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		log:               log,
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair][]engine.ContactPoint),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

// Update integrates one fixed step and dispatches the collision callbacks for it.
// Contacts found here reach the handlers before their next FixedUpdate.
func (p *PhysicsWorld) Update(deltaTime float32) {
	for k := range p.currentCollisions {
		delete(p.currentCollisions, k)
	}
	p.order = p.order[:0]

	// 1. Apply gravity and integrate velocity
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)
	}

	// 2. Rigidbody vs Static collision
	for _, obj := range p.Objects {
		for _, static := range p.Statics {
			p.resolveStaticCollision(obj, static)
		}
	}

	// 3. Dispatch collision callbacks
	p.dispatchCollisionCallbacks()
}

func (p *PhysicsWorld) resolveStaticCollision(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	sphere := engine.GetComponent[*components.SphereCollider](obj)
	box := engine.GetComponent[*components.BoxCollider](static)
	if rb == nil || sphere == nil || box == nil {
		return
	}

	center := sphere.GetCenter()
	obb := NewOBB(box.GetCenter(), box.GetWorldSize(), static.Transform)

	// Find closest point on OBB to sphere center
	closest := obb.ClosestPoint(center)

	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)

	if dist > sphere.Radius+contactSkin {
		return
	}

	// Center inside the box: push out through the top face
	normal := obb.TopNormal()
	if dist >= 0.0001 {
		normal = rl.Vector3Scale(diff, 1/dist)
	}

	p.recordContact(obj, static, engine.ContactPoint{Point: closest, Normal: normal})

	// Push sphere out
	if penetration := sphere.Radius - dist; penetration > 0 {
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(normal, penetration))
	}

	// Cancel velocity into the surface. Tangential speed is left to the controller.
	if velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal); velAlongNormal < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, velAlongNormal))
	}
}

// recordContact adds a contact point to the pair's manifold for this step
func (p *PhysicsWorld) recordContact(a, b *engine.GameObject, c engine.ContactPoint) {
	pair := CollisionPair{A: a, B: b}
	if _, ok := p.currentCollisions[pair]; !ok {
		p.order = append(p.order, pair)
	}
	p.currentCollisions[pair] = append(p.currentCollisions[pair], c)
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Stay/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for _, pair := range p.order {
		contacts := p.currentCollisions[pair]
		collision := engine.Collision{Other: pair.B, Contacts: contacts}
		if p.activeCollisions[pair] {
			p.notify(pair.A, func(h engine.CollisionHandler) { h.OnCollisionStay(collision) })
		} else {
			if p.log != nil {
				p.log.WithFields(logrus.Fields{
					"object": pair.A.Name,
					"other":  pair.B.Name,
				}).Debug("collision enter")
			}
			p.notify(pair.A, func(h engine.CollisionHandler) { h.OnCollisionEnter(collision) })
		}
	}

	// Find ended collisions (exit)
	for pair := range p.activeCollisions {
		if _, ok := p.currentCollisions[pair]; !ok {
			p.notify(pair.A, func(h engine.CollisionHandler) { h.OnCollisionExit(pair.B) })
			delete(p.activeCollisions, pair)
		}
	}

	for _, pair := range p.order {
		p.activeCollisions[pair] = true
	}
}

// notify calls fn on all handlers in obj
func (p *PhysicsWorld) notify(obj *engine.GameObject, fn func(engine.CollisionHandler)) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			fn(handler)
		}
	}
}
