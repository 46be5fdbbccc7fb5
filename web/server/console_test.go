package server

import (
	"image"
	"testing"
	"time"

	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/stretchr/testify/require"
)

func TestPassMessage(t *testing.T) {
	result := renderer.PassResult{
		PassNumber:  2,
		TotalPasses: 5,
		Image:       image.NewRGBA(image.Rect(0, 0, 1, 1)),
		Stats:       renderer.RenderStats{MaxSamples: 12},
		Duration:    1500 * time.Microsecond,
	}

	msg := passMessage(result)
	require.Equal(t, "pass 2/5: 12 samples/pixel in 2ms", msg.Message)
	require.Equal(t, "info", msg.Level)
	require.False(t, msg.Timestamp.IsZero())
}

func TestNewConsoleMessage(t *testing.T) {
	before := time.Now()
	msg := newConsoleMessage("warning", "%d tiles left", 3)

	if msg.Message != "3 tiles left" {
		t.Errorf("Expected message %q, got %q", "3 tiles left", msg.Message)
	}
	if msg.Level != "warning" {
		t.Errorf("Expected level warning, got %s", msg.Level)
	}
	if msg.Timestamp.Before(before) {
		t.Errorf("Expected timestamp after %v, got %v", before, msg.Timestamp)
	}
}
