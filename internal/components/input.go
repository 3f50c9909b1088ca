package components

import rl "github.com/gen2brain/raylib-go/raylib"

// InputSource supplies one frame of player input.
type InputSource interface {
	// Axes returns the horizontal and vertical axis, each in [-1, 1].
	Axes() (x, y float32)
	// JumpPressed reports a jump press that started this frame.
	JumpPressed() bool
}

// KeyboardInput reads WASD / arrow keys and Space.
//
// The demo camera looks down +Z, which puts world +X on the left of the screen, so the
// horizontal axis is mirrored to keep D and Right moving the sphere to the right.
type KeyboardInput struct{}

func (KeyboardInput) Axes() (float32, float32) {
	var x, y float32
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		x++
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		x--
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		y++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		y--
	}
	return x, y
}

func (KeyboardInput) JumpPressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

// ScriptedInput replays a fixed input: a held direction plus jump presses on chosen frames.
// It drives headless runs and tests.
type ScriptedInput struct {
	X, Y   float32
	JumpOn map[int]bool
	frame  int
}

func (s *ScriptedInput) Axes() (float32, float32) {
	return s.X, s.Y
}

// JumpPressed advances the frame counter, so call it exactly once per frame after Axes.
func (s *ScriptedInput) JumpPressed() bool {
	pressed := s.JumpOn[s.frame]
	s.frame++
	return pressed
}

// Frame returns the number of frames consumed so far.
func (s *ScriptedInput) Frame() int {
	return s.frame
}
