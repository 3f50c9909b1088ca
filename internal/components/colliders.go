package components

import (
	"movingsphere/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SphereCollider gives a dynamic body its contact radius. The moving sphere is the only
// collider that moves, so it is the only one the physics world tests against statics.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// GetCenter is the sphere center in world space.
func (s *SphereCollider) GetCenter() rl.Vector3 {
	return offsetFrom(s.GetGameObject(), s.Offset)
}

// BoxCollider is static level geometry: floor, ramps, ledges and walls. It follows its
// GameObject's position, rotation and scale, so a ramp is a rotated box.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter is the box center in world space.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return offsetFrom(b.GetGameObject(), b.Offset)
}

// GetWorldSize is the full box extent with the GameObject's scale applied.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.GetGameObject().Transform.Scale)
}

func offsetFrom(g *engine.GameObject, offset rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(g.Transform.Position, offset)
}
