package components

import (
	"movingsphere/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
)

// TintSource feeds ground-contact feedback to a renderer. It is read-only for the renderer.
type TintSource interface {
	GroundContactCount() int
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3 // X is the radius for spheres
	Tint     TintSource
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// ContactTint maps a ground-contact count to a grey level: black in the air, a quarter
// brighter per contact, white from four contacts on.
func ContactTint(count int) rl.Color {
	level := float32(count) * 0.25
	if level > 1 {
		level = 1
	}
	v := uint8(level * 255)
	return rl.Color{R: v, G: v, B: v, A: 255}
}

// CurrentColor is the color the mesh draws with this frame.
func (m *MeshRenderer) CurrentColor() rl.Color {
	if m.Tint != nil {
		return ContactTint(m.Tint.GroundContactCount())
	}
	return m.Color
}

func (m *MeshRenderer) Draw() {
	if g := m.GetGameObject(); g != nil {
		m.DrawAt(g.Transform.Position)
	}
}

// DrawAt draws the mesh with its object's rotation and scale at position, which lets the
// caller draw an interpolated position between physics steps.
func (m *MeshRenderer) DrawAt(position rl.Vector3) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	t := g.Transform
	color := m.CurrentColor()

	rl.PushMatrix()
	rl.Translatef(position.X, position.Y, position.Z)
	rl.Rotatef(t.Rotation.Z, 0, 0, 1)
	rl.Rotatef(t.Rotation.Y, 0, 1, 0)
	rl.Rotatef(t.Rotation.X, 1, 0, 0)

	switch m.MeshType {
	case MeshCube:
		size := rl.Vector3{X: m.Size.X * t.Scale.X, Y: m.Size.Y * t.Scale.Y, Z: m.Size.Z * t.Scale.Z}
		rl.DrawCubeV(rl.Vector3{}, size, color)
		rl.DrawCubeWiresV(rl.Vector3{}, size, rl.DarkGray)
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X, color)
		rl.DrawSphereWires(rl.Vector3{}, m.Size.X, 8, 12, rl.Gray)
	}

	rl.PopMatrix()
}
