// Headless run of the demo level with scripted input, printing one trajectory line per step
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"movingsphere/internal/components"
	"movingsphere/internal/config"
	"movingsphere/internal/world"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	steps := flag.Int("steps", 250, "number of fixed steps to simulate")
	x := flag.Float64("x", 0, "held horizontal input")
	y := flag.Float64("y", 1, "held vertical input")
	jumps := flag.String("jump", "100", "comma separated steps on which jump is pressed")
	every := flag.Int("every", 1, "log every n-th step")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	f := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("loading tuning file")
		}
		f = loaded
	}

	jumpOn, err := parseSteps(*jumps)
	if err != nil {
		log.WithError(err).Fatal("bad -jump")
	}
	if *every < 1 {
		*every = 1
	}

	input := &components.ScriptedInput{X: float32(*x), Y: float32(*y), JumpOn: jumpOn}
	w, err := world.New(f, input, log)
	if err != nil {
		log.WithError(err).Error("building world")
		os.Exit(1)
	}

	dt := f.Physics.FixedStep
	for i := 0; i < *steps; i++ {
		w.Update(dt)
		w.FixedStep(dt)

		if i%*every != 0 {
			continue
		}
		report := w.Sphere.LastStep()
		pos := w.Player.Transform.Position
		log.WithFields(logrus.Fields{
			"step":     i,
			"frame":    input.Frame(),
			"pos":      fmt.Sprintf("%.3f,%.3f,%.3f", pos.X, pos.Y, pos.Z),
			"vel":      fmt.Sprintf("%.3f,%.3f,%.3f", w.Body.Velocity.X, w.Body.Velocity.Y, w.Body.Velocity.Z),
			"ground":   report.OnGround,
			"contacts": report.Contacts,
			"jumped":   report.Jump.Jumped,
		}).Info("step")
	}
}

// parseSteps turns "10,40,41" into a lookup set.
func parseSteps(s string) (map[int]bool, error) {
	out := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", part, err)
		}
		out[n] = true
	}
	return out, nil
}
