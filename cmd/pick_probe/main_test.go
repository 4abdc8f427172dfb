package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"toyviewer/config"
	"toyviewer/interaction"
	"toyviewer/viewer"
)

func TestPrintPickMap(t *testing.T) {
	s := config.Default()
	s.Scene.StarCount = 0
	v := viewer.New(s, interaction.NewManualScheduler(time.Unix(0, 0)))

	var buf bytes.Buffer
	printPickMap(&buf, v, interaction.Viewport{Width: 1280, Height: 720}, 40, 15)
	out := buf.String()

	for _, want := range []string{"=== Pick Map ===", "Legend:", "Toy House Body", "Unknown Part"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	grid := 0
	for _, l := range lines {
		if len(l) == 40 && !strings.Contains(l, " ") {
			grid++
		}
	}
	if grid != 15 {
		t.Errorf("grid rows = %d, want 15", grid)
	}
}
