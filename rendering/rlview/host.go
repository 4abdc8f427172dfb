// Package rlview runs the viewer in a native raylib window.
package rlview

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"toyviewer/config"
	"toyviewer/core"
	"toyviewer/interaction"
	"toyviewer/viewer"
)

const (
	labelFontSize = 18
	labelPadding  = 8
	// Presses that move further than this are drags, not clicks
	clickSlop = 4
)

// Run opens the window and blocks until it is closed
func Run(settings config.Settings) error {
	if settings.Viewer.Width <= 0 || settings.Viewer.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", settings.Viewer.Width, settings.Viewer.Height)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.Viewer.Width), int32(settings.Viewer.Height), "Toy House Viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Viewer.TargetFPS))

	sched := interaction.NewLoopScheduler(64)
	defer sched.Close()

	h := newHost(viewer.New(settings, sched))
	h.viewer.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	for !rl.WindowShouldClose() {
		sched.Drain()
		h.update(time.Now())

		rl.BeginDrawing()
		rl.ClearBackground(toRaylibColor(h.viewer.Scene.Background))
		h.draw()
		rl.EndDrawing()
	}
	h.viewer.Controller.Reset()
	return nil
}

type host struct {
	viewer *viewer.Viewer
	faces  *faceCache

	lastMouse rl.Vector2
	pressAt   rl.Vector2
	pressed   bool
}

func newHost(v *viewer.Viewer) *host {
	return &host{
		viewer: v,
		faces:  newFaceCache(),
	}
}

func (h *host) update(now time.Time) {
	if rl.IsWindowResized() {
		h.viewer.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	vp := interaction.Viewport{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
	mouse := rl.GetMousePosition()
	ev := interaction.PointerEvent{X: mouse.X, Y: mouse.Y, Viewport: vp, Inside: true}
	ctrl := h.viewer.Controller

	if mouse != h.lastMouse {
		h.lastMouse = mouse
		ctrl.OnPointerMove(ev)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		h.pressed = true
		h.pressAt = mouse
		ctrl.OnPointerDown(ev)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		ctrl.OnPointerUp(ev)
		if h.pressed && isClick(h.pressAt, mouse) {
			// The label panel is not part of the viewer surface
			ev.Inside = !panelContains(h.viewer.Panel, mouse.X, mouse.Y)
			ctrl.OnClick(ev)
		}
		h.pressed = false
	}

	moved := h.viewer.Step(now)
	h.faces.Invalidate(moved...)
}

func (h *host) draw() {
	v := h.viewer
	rl.BeginMode3D(toRaylibCamera(v.Camera))
	rl.DisableBackfaceCulling()

	for _, n := range v.Scene.Nodes() {
		if n.Mesh == nil || n.Material == nil {
			continue
		}
		for _, f := range h.faces.Faces(n) {
			c := toRaylibColor(viewer.Shade(v.Scene, n.Material, f.Normal))
			rl.DrawTriangle3D(toRaylibVec(f.A), toRaylibVec(f.B), toRaylibVec(f.C), c)
		}
	}

	if sf := v.Scene.Stars; sf != nil {
		c := toRaylibColor(sf.Color)
		for _, p := range sf.Positions {
			rl.DrawPoint3D(toRaylibVec(p), c)
		}
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()

	if p := v.Panel; p.Visible {
		w, hgt := panelSize(p.Text)
		rl.DrawRectangle(int32(p.X), int32(p.Y), w, hgt, rl.NewColor(0, 0, 0, 180))
		rl.DrawText(p.Text, int32(p.X)+labelPadding, int32(p.Y)+labelPadding, labelFontSize, rl.White)
	}
	rl.DrawFPS(10, 10)
}

func panelSize(text string) (w, h int32) {
	return rl.MeasureText(text, labelFontSize) + 2*labelPadding, labelFontSize + 2*labelPadding
}

func panelContains(p *interaction.Panel, x, y float32) bool {
	if !p.Visible {
		return false
	}
	w, h := panelSize(p.Text)
	return x >= p.X && x <= p.X+float32(w) && y >= p.Y && y <= p.Y+float32(h)
}

func isClick(from, to rl.Vector2) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	return dx*dx+dy*dy <= clickSlop*clickSlop
}

func toRaylibCamera(c *core.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toRaylibVec(c.Position),
		Target:     toRaylibVec(c.Target),
		Up:         toRaylibVec(c.Up),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}
