package components

import (
	"movingsphere/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody marks a GameObject as dynamic. The physics world integrates its velocity and
// cancels the part of it that points into static geometry; everything else is left to
// whatever drives the body.
type Rigidbody struct {
	engine.BaseComponent
	Velocity   rl.Vector3
	UseGravity bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{UseGravity: true}
}
