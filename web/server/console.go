package server

import (
	"fmt"
	"time"

	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/scene"
)

// ConsoleMessage is a human readable progress line shown in the browser console.
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

func newConsoleMessage(level, format string, args ...any) ConsoleMessage {
	return ConsoleMessage{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	}
}

func startMessage(sc *scene.Scene, pr *renderer.ProgressiveRaytracer) ConsoleMessage {
	return newConsoleMessage("info", "rendering %s at %dx%d, %d samples in %d passes",
		sc.Name, pr.Width(), pr.Height(), sc.Sampling.SamplesPerPixel, pr.Passes())
}

func passMessage(result renderer.PassResult) ConsoleMessage {
	return newConsoleMessage("info", "pass %d/%d: %d samples/pixel in %s",
		result.PassNumber, result.TotalPasses, result.Stats.MaxSamples, result.Duration.Round(time.Millisecond))
}
