package world

import (
	"fmt"

	"movingsphere/internal/components"
	"movingsphere/internal/config"
	"movingsphere/internal/engine"
	"movingsphere/internal/movement"
	"movingsphere/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

const FloorSize = 40.0

// KillHeight is the Y below which the player is respawned.
const KillHeight = -20.0

// World owns the scene, its physics and the player sphere.
type World struct {
	Scene    *engine.Scene
	Physics  *physics.PhysicsWorld
	Player   *engine.GameObject
	Sphere   *components.MovingSphere
	Body     *components.Rigidbody
	Collider *components.SphereCollider

	renderer *components.MeshRenderer
	spawn    rl.Vector3
	previous rl.Vector3 // player position before the last fixed step
	log      logrus.FieldLogger
}

// New builds the test level and the player described by f.
func New(f *config.File, input components.InputSource, log logrus.FieldLogger) (*World, error) {
	cfg, err := f.MovementConfig()
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(log),
		spawn:   rl.Vector3{X: f.Player.Spawn.X, Y: f.Player.Spawn.Y, Z: f.Player.Spawn.Z},
		log:     log,
	}
	w.Physics.Gravity = rl.Vector3{X: f.Physics.Gravity.X, Y: f.Physics.Gravity.Y, Z: f.Physics.Gravity.Z}

	w.createLevel()
	w.createPlayer(f, cfg, input)

	w.Scene.Start()
	log.WithFields(logrus.Fields{
		"statics": len(w.Physics.Statics),
		"spawn":   w.spawn,
	}).Info("world ready")
	return w, nil
}

type block struct {
	name     string
	pos      rl.Vector3
	size     rl.Vector3
	rotation rl.Vector3
	color    rl.Color
}

func (w *World) createLevel() {
	blocks := []block{
		{"Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: FloorSize, Y: 1, Z: FloorSize}, rl.Vector3{}, rl.LightGray},
		// Shallow enough to stand on with the default 25 degree limit
		{"GentleRamp", rl.Vector3{X: -6, Y: 0.75, Z: 6}, rl.Vector3{X: 4, Y: 0.5, Z: 8}, rl.Vector3{X: -15}, rl.SkyBlue},
		// Too steep to count as ground with the defaults
		{"SteepRamp", rl.Vector3{X: 0, Y: 1.9, Z: 6}, rl.Vector3{X: 4, Y: 0.5, Z: 8}, rl.Vector3{X: -35}, rl.Orange},
		{"Ledge", rl.Vector3{X: 6, Y: 0.75, Z: 6}, rl.Vector3{X: 4, Y: 1.5, Z: 4}, rl.Vector3{}, rl.Lime},
		{"Wall", rl.Vector3{X: 0, Y: 2, Z: 14}, rl.Vector3{X: 16, Y: 4, Z: 1}, rl.Vector3{}, rl.Gray},
	}

	for _, b := range blocks {
		obj := engine.NewGameObject(b.name)
		obj.Tags = []string{"static"}
		obj.Transform.Position = b.pos
		obj.Transform.Rotation = b.rotation
		obj.AddComponent(components.NewBoxCollider(b.size))
		obj.AddComponent(components.NewMeshRenderer(components.MeshCube, b.color, b.size))

		w.Scene.AddGameObject(obj)
		w.Physics.AddObject(obj)
	}
}

func (w *World) createPlayer(f *config.File, cfg movement.Config, input components.InputSource) {
	w.Player = engine.NewGameObject("Sphere")
	w.Player.Tags = []string{"player"}
	w.Player.Transform.Position = w.spawn

	w.previous = w.spawn

	w.Body = components.NewRigidbody()
	w.Player.AddComponent(w.Body)

	w.Collider = components.NewSphereCollider(f.Player.Radius)
	w.Player.AddComponent(w.Collider)

	gravity := func() rl.Vector3 { return w.Physics.Gravity }
	w.Sphere = components.NewMovingSphere(w.Body, cfg, gravity, input, w.log.WithField("object", "Sphere"))
	w.Player.AddComponent(w.Sphere)

	w.renderer = components.NewMeshRenderer(components.MeshSphere, rl.White, rl.Vector3{X: f.Player.Radius})
	w.renderer.Tint = w.Sphere
	w.Player.AddComponent(w.renderer)

	w.Scene.AddGameObject(w.Player)
	w.Physics.AddObject(w.Player)
}

// Update runs the frame-rate callbacks, which is where input is sampled.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// FixedStep advances one physics step. Controllers consume the contacts gathered by the
// previous step, then the physics world moves bodies and gathers contacts for the next one.
func (w *World) FixedStep(deltaTime float32) {
	w.previous = w.Player.Transform.Position
	w.Scene.FixedUpdate(deltaTime)
	w.Physics.Update(deltaTime)

	if w.Player.Transform.Position.Y < KillHeight {
		w.Respawn()
	}
}

// Respawn puts the player back at the spawn point at rest.
func (w *World) Respawn() {
	w.Player.Transform.Position = w.spawn
	w.previous = w.spawn
	w.Body.Velocity = rl.Vector3{}
	w.log.WithField("spawn", w.spawn).Info("player respawned")
}

// ApplyConfig swaps the player tuning, gravity, radius and spawn point. The new spawn point
// takes effect on the next respawn.
func (w *World) ApplyConfig(f *config.File) error {
	cfg, err := f.MovementConfig()
	if err != nil {
		return err
	}
	w.Sphere.SetConfig(cfg)
	w.Physics.Gravity = rl.Vector3{X: f.Physics.Gravity.X, Y: f.Physics.Gravity.Y, Z: f.Physics.Gravity.Z}

	if f.Player.Radius != w.Collider.Radius {
		w.log.WithFields(logrus.Fields{"from": w.Collider.Radius, "to": f.Player.Radius}).Info("player radius changed")
		w.Collider.Radius = f.Player.Radius
		w.renderer.Size = rl.Vector3{X: f.Player.Radius}
	}
	w.spawn = rl.Vector3{X: f.Player.Spawn.X, Y: f.Player.Spawn.Y, Z: f.Player.Spawn.Z}
	return nil
}

// RenderPosition blends the player position across the last fixed step. alpha is the
// fraction of the next step already elapsed.
func (w *World) RenderPosition(alpha float32) rl.Vector3 {
	return rl.Vector3Lerp(w.previous, w.Player.Transform.Position, alpha)
}

// Draw renders the level and the interpolated player. Call between BeginMode3D and EndMode3D.
func (w *World) Draw(alpha float32) {
	for _, g := range w.Scene.FindByTag("static") {
		if r := engine.GetComponent[*components.MeshRenderer](g); r != nil {
			r.Draw()
		}
	}
	w.renderer.DrawAt(w.RenderPosition(alpha))
}
