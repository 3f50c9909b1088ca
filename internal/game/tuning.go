package game

import (
	"fmt"

	"movingsphere/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelX     = 10
	panelY     = 150
	panelW     = 300
	rowH       = 24
	sliderLeft = 150
)

// TuningPanel edits the movement tunables live. Every change goes through config validation
// before it reaches the controller.
type TuningPanel struct {
	Visible bool
	values  config.Movement
}

func NewTuningPanel(m config.Movement) *TuningPanel {
	return &TuningPanel{Visible: true, values: m}
}

// Sync replaces the panel values, for example after the tuning file was reloaded.
func (p *TuningPanel) Sync(m config.Movement) {
	p.values = m
}

// Draw renders the panel and reports the edited values when anything changed.
func (p *TuningPanel) Draw() (config.Movement, bool) {
	if !p.Visible {
		return p.values, false
	}

	before := p.values
	gui.GroupBox(rl.Rectangle{X: panelX, Y: panelY, Width: panelW, Height: 7*rowH + 10}, "Tuning")

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: panelX + sliderLeft - 40, Y: float32(panelY + 10 + i*rowH), Width: panelW - sliderLeft - 10, Height: rowH - 6}
	}

	v := &p.values
	v.MaxSpeed = gui.Slider(row(0), "Speed", fmt.Sprintf("%.1f", v.MaxSpeed), v.MaxSpeed, 0, 100)
	v.MaxAcceleration = gui.Slider(row(1), "Accel", fmt.Sprintf("%.1f", v.MaxAcceleration), v.MaxAcceleration, 0, 100)
	v.MaxAirAcceleration = gui.Slider(row(2), "Air accel", fmt.Sprintf("%.1f", v.MaxAirAcceleration), v.MaxAirAcceleration, 0, 100)
	v.JumpHeight = gui.Slider(row(3), "Jump", fmt.Sprintf("%.2f", v.JumpHeight), v.JumpHeight, 0, 10)
	airJumps := gui.Slider(row(4), "Air jumps", fmt.Sprintf("%d", v.MaxAirJumps), float32(v.MaxAirJumps), 0, 5)
	v.MaxAirJumps = int(airJumps + 0.5)
	v.MaxGroundAngle = gui.Slider(row(5), "Ground angle", fmt.Sprintf("%.0f", v.MaxGroundAngle), v.MaxGroundAngle, 0, 90)

	return p.values, p.values != before
}
