package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"toyviewer/config"
	"toyviewer/interaction"
	"toyviewer/viewer"
)

const symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func main() {
	var (
		configPath string
		cols, rows int
		angle      float32
	)

	cmd := &cobra.Command{
		Use:   "pick_probe",
		Short: "Print an ASCII map of what the pointer would pick",
		Long: `pick_probe casts a picking ray through a grid of screen positions
from the viewer's camera and prints which part each cell resolves to.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			v := viewer.New(settings, interaction.NewManualScheduler(time.Now()))
			v.Orbit.SetAngle(angle)
			v.Orbit.Place(v.Camera)

			vp := interaction.Viewport{Width: float32(settings.Viewer.Width), Height: float32(settings.Viewer.Height)}
			printPickMap(os.Stdout, v, vp, cols, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Settings file (.json, .yaml, .yml)")
	cmd.Flags().IntVar(&cols, "cols", 80, "Grid columns")
	cmd.Flags().IntVar(&rows, "rows", 30, "Grid rows")
	cmd.Flags().Float32Var(&angle, "angle", 0, "Orbit angle in radians")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func printPickMap(w io.Writer, v *viewer.Viewer, vp interaction.Viewport, cols, rows int) {
	fmt.Fprintln(w, "=== Pick Map ===")
	fmt.Fprintf(w, "Camera: (%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)\n\n",
		v.Camera.Position[0], v.Camera.Position[1], v.Camera.Position[2],
		v.Camera.Target[0], v.Camera.Target[1], v.Camera.Target[2])

	legend := map[string]byte{}
	unknown := v.Settings.Interaction.UnknownLabel

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			x := (float32(col) + 0.5) / float32(cols) * vp.Width
			y := (float32(row) + 0.5) / float32(rows) * vp.Height
			node := v.Controller.Pick(interaction.PointerEvent{X: x, Y: y, Viewport: vp, Inside: true})
			if node == nil {
				line.WriteByte('.')
				continue
			}
			label, ok := node.Label()
			if !ok {
				label = unknown
			}
			sym, seen := legend[label]
			if !seen {
				sym = '?'
				if len(legend) < len(symbols) {
					sym = symbols[len(legend)]
				}
				legend[label] = sym
			}
			line.WriteByte(sym)
		}
		fmt.Fprintln(w, line.String())
	}

	labels := make([]string, 0, len(legend))
	for label := range legend {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return legend[labels[i]] < legend[labels[j]] })

	fmt.Fprintln(w, "\nLegend:")
	for _, label := range labels {
		fmt.Fprintf(w, "  %c  %s\n", legend[label], label)
	}
}
