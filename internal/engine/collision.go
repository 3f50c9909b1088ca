package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// ContactPoint is one point of a collision manifold.
// Normal is unit length and points away from the other object, toward the receiver.
type ContactPoint struct {
	Point  rl.Vector3
	Normal rl.Vector3
}

// Collision is delivered to CollisionHandler components.
type Collision struct {
	Other    *GameObject
	Contacts []ContactPoint
}
