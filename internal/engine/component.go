package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run at the physics rate.
// The physics world calls FixedUpdate once per step, before integrating bodies.
type FixedUpdater interface {
	FixedUpdate(deltaTime float32)
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
// Enter fires on the first step two objects touch, Stay on every following step they still
// touch, and Exit on the first step they no longer do.
type CollisionHandler interface {
	OnCollisionEnter(c Collision)
	OnCollisionStay(c Collision)
	OnCollisionExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
