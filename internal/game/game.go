package game

import (
	"fmt"

	"movingsphere/internal/components"
	"movingsphere/internal/config"
	"movingsphere/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// cameraOffset places the follow camera behind and above the sphere, looking down +Z.
var cameraOffset = rl.Vector3{X: 0, Y: 6, Z: -10}

type Game struct {
	World     *world.World
	DebugMode bool

	file    *config.File
	clock   *FixedClock
	panel   *TuningPanel
	watcher *config.Watcher
	log     logrus.FieldLogger
}

// New creates the game. watcher may be nil when hot reload is off.
func New(f *config.File, watcher *config.Watcher, log logrus.FieldLogger) (*Game, error) {
	w, err := world.New(f, components.KeyboardInput{}, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		World:   w,
		file:    f,
		clock:   NewFixedClock(f.Physics.FixedStep),
		panel:   NewTuningPanel(f.Movement),
		watcher: watcher,
		log:     log,
	}, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Moving Sphere")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	g.pollWatcher()

	deltaTime := rl.GetFrameTime()

	// Input is sampled every frame; the jump latch carries presses into the next physics step
	g.World.Update(deltaTime)

	for i := g.clock.Advance(deltaTime); i > 0; i-- {
		g.World.FixedStep(g.clock.Step)
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.World.Respawn()
	}
}

// pollWatcher applies reloaded tuning files without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case f, ok := <-g.watcher.Updates:
		if ok {
			g.applyFile(f)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.WithError(err).Warn("keeping previous tuning")
		}
	default:
	}
}

func (g *Game) applyFile(f *config.File) {
	if err := g.World.ApplyConfig(f); err != nil {
		g.log.WithError(err).Warn("tuning rejected")
		return
	}
	if f.Physics.FixedStep != g.clock.Step {
		g.log.WithFields(logrus.Fields{"from": g.clock.Step, "to": f.Physics.FixedStep}).Info("fixed step changed")
		g.clock.Step = f.Physics.FixedStep
	}
	g.file = f
	g.panel.Sync(f.Movement)
}

func (g *Game) camera() rl.Camera3D {
	target := g.World.RenderPosition(g.clock.Alpha())
	return rl.Camera3D{
		Position:   rl.Vector3Add(target, cameraOffset),
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.camera())
	g.World.Draw(g.clock.Alpha())
	if g.DebugMode {
		g.drawContactNormal()
	}
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawContactNormal() {
	ctrl := g.World.Sphere.Controller()
	n := ctrl.ContactNormal()
	start := g.World.RenderPosition(g.clock.Alpha())
	end := rl.Vector3Add(start, rl.Vector3{X: n.X() * 2, Y: n.Y() * 2, Z: n.Z() * 2})
	color := rl.Red
	if ctrl.OnGround() {
		color = rl.Green
	}
	rl.DrawLine3D(start, end, color)
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD / arrows to move, Space to jump, R to respawn", 10, 10, 20, rl.LightGray)
	rl.DrawText("Tab toggles tuning, F1 shows the contact normal", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	ctrl := g.World.Sphere.Controller()
	v := g.World.Body.Velocity
	speed := rl.Vector2Length(rl.Vector2{X: v.X, Y: v.Z})
	rl.DrawText(fmt.Sprintf("Contacts: %d  Ground: %t  Jump phase: %d", ctrl.GroundContactCount(), ctrl.OnGround(), ctrl.JumpPhase()), 10, 85, 18, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Horizontal speed: %.2f  Vertical: %.2f", speed, v.Y), 10, 108, 18, rl.Yellow)
	if g.DebugMode {
		d := ctrl.DesiredVelocity()
		rl.DrawText(fmt.Sprintf("Desired: (%.1f, %.1f)  Jump latched: %t  Phase: %v", d.X(), d.Z(), ctrl.JumpRequested(), ctrl.Phase()), 10, 131, 18, rl.Orange)
	}

	if m, changed := g.panel.Draw(); changed {
		f := *g.file
		f.Movement = m
		g.applyFile(&f)
	}
}
