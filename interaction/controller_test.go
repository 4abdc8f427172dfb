package interaction

import (
	"testing"
	"time"

	"toyviewer/core"
)

type fixture struct {
	cam   *core.Camera
	root  *core.Node
	left  *core.Node
	right *core.Node
	panel *Panel
	sched *ManualScheduler
	ctrl  *Controller

	leftEv, rightEv, missEv PointerEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cam:   testCamera(),
		root:  core.NewGroup(""),
		left:  cube("Left Cube", -2, 0, 0),
		right: cube("Right Cube", 2, 0, 0),
		panel: &Panel{},
		sched: NewManualScheduler(time.Unix(0, 0)),
	}
	f.root.Add(f.left, f.right)
	f.ctrl = NewController(f.cam, f.root, f.panel, f.sched, DefaultOptions())

	lx, ly := screenOf(t, f.cam, f.left)
	rx, ry := screenOf(t, f.cam, f.right)
	f.leftEv = PointerEvent{X: lx, Y: ly, Viewport: testViewport, Inside: true}
	f.rightEv = PointerEvent{X: rx, Y: ry, Viewport: testViewport, Inside: true}
	f.missEv = PointerEvent{X: 300, Y: 300, Viewport: testViewport, Inside: true}
	return f
}

func TestHoverSnapshotTakenOnce(t *testing.T) {
	f := newFixture(t)
	original := f.left.Material
	before := original.Clone()

	f.ctrl.OnPointerMove(f.leftEv)
	if f.ctrl.Hovered() != f.left {
		t.Fatal("left cube should be hovered")
	}
	glow := f.left.Material
	if glow == original {
		t.Fatal("hover must swap in a highlighted copy")
	}
	if glow.EmissiveColor() != 0x666666 {
		t.Errorf("emissive = %v, want #666666", glow.EmissiveColor())
	}
	if !original.Equal(before) {
		t.Error("original material was modified")
	}

	// Same node again: no new snapshot, no new copy
	f.ctrl.OnPointerMove(f.leftEv)
	if f.left.Material != glow {
		t.Error("hovering the same node twice re-applied the highlight")
	}
}

func TestHoverLeaveRestoresExactMaterial(t *testing.T) {
	f := newFixture(t)
	original := f.left.Material
	before := original.Clone()

	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.OnPointerMove(f.missEv)

	if f.ctrl.Hovered() != nil {
		t.Error("nothing should be hovered")
	}
	if f.left.Material != original || !original.Equal(before) {
		t.Errorf("material not restored: %+v", f.left.Material)
	}
}

func TestHoverMovesBetweenNodes(t *testing.T) {
	f := newFixture(t)
	leftOriginal := f.left.Material

	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.OnPointerMove(f.rightEv)

	if f.left.Material != leftOriginal {
		t.Error("left cube kept its hover highlight")
	}
	if f.ctrl.Hovered() != f.right || f.right.Material.EmissiveColor() != 0x666666 {
		t.Error("right cube should be highlighted")
	}
}

func TestHoverWithoutEmissive(t *testing.T) {
	f := newFixture(t)
	basic := core.NewBasicMaterial(0x123456)
	f.left.Material = basic

	f.ctrl.OnPointerMove(f.leftEv)
	if f.ctrl.Hovered() != f.left {
		t.Error("node without emissive is still hovered")
	}
	if f.left.Material != basic || basic.Emissive != nil {
		t.Error("material without emissive must not be modified")
	}

	f.ctrl.OnPointerMove(f.missEv)
	if f.left.Material != basic {
		t.Error("leave must keep the untouched material")
	}
}

func TestClickRoundTrip(t *testing.T) {
	f := newFixture(t)
	originalColor := f.left.Material.Color

	f.ctrl.OnClick(f.leftEv)

	if f.left.Material.Color != 0xedaab0 {
		t.Errorf("color = %v, want click color", f.left.Material.Color)
	}
	if !f.panel.Visible || f.panel.Text != "Left Cube" {
		t.Errorf("panel = %+v", f.panel)
	}
	if f.panel.X != f.leftEv.X+10 || f.panel.Y != f.leftEv.Y+10 {
		t.Errorf("panel at (%v, %v), want pointer + 10", f.panel.X, f.panel.Y)
	}

	f.sched.Advance(999 * time.Millisecond)
	if f.left.Material.Color != 0xedaab0 || !f.panel.Visible {
		t.Fatal("reverted too early")
	}

	f.sched.Advance(time.Millisecond)
	if f.left.Material.Color != originalColor {
		t.Errorf("color = %v, want %v", f.left.Material.Color, originalColor)
	}
	if f.panel.Visible {
		t.Error("panel should be hidden after the revert")
	}
	if f.ctrl.PendingReverts() != 0 || f.sched.Pending() != 0 {
		t.Error("no reverts should remain")
	}
}

func TestReclickReplacesTimer(t *testing.T) {
	f := newFixture(t)
	originalColor := f.left.Material.Color

	f.ctrl.OnClick(f.leftEv)
	f.sched.Advance(600 * time.Millisecond)
	f.ctrl.OnClick(f.leftEv)

	if f.ctrl.PendingReverts() != 1 || f.sched.Pending() != 1 {
		t.Fatalf("pending = %d/%d, want one timer", f.ctrl.PendingReverts(), f.sched.Pending())
	}

	// First timer would have fired here
	f.sched.Advance(600 * time.Millisecond)
	if f.left.Material.Color != 0xedaab0 {
		t.Fatal("replaced timer still fired")
	}

	f.sched.Advance(400 * time.Millisecond)
	// The second click must not have captured the click color
	if f.left.Material.Color != originalColor {
		t.Errorf("color = %v, want original %v", f.left.Material.Color, originalColor)
	}
}

func TestUnnamedNodeShowsUnknownPart(t *testing.T) {
	f := newFixture(t)
	f.left.Name = ""

	f.ctrl.OnClick(f.leftEv)
	if f.panel.Text != "Unknown Part" {
		t.Errorf("label = %q, want Unknown Part", f.panel.Text)
	}
}

func TestLabelUsesNamedAncestor(t *testing.T) {
	f := newFixture(t)
	group := core.NewGroup("Teddy Bear")
	f.root.Add(group)
	f.left.Name = ""
	group.Add(f.left)

	f.ctrl.OnClick(f.leftEv)
	if f.panel.Text != "Teddy Bear" {
		t.Errorf("label = %q, want Teddy Bear", f.panel.Text)
	}
}

func TestClickMissLeavesState(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnClick(f.missEv)
	if f.panel.Visible || f.panel.Version != 0 || f.sched.Pending() != 0 {
		t.Error("a miss must not show a label or schedule anything")
	}
}

func TestOutsideClickClosesLabel(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnClick(f.leftEv)

	outside := f.rightEv
	outside.Inside = false
	f.ctrl.OnClick(outside)

	if f.panel.Visible {
		t.Error("outside click must hide the label")
	}
	// The pick still happens first
	if !f.ctrl.IsHighlighted(f.right) {
		t.Error("outside click still highlights the node under the pointer")
	}
}

func TestOlderRevertKeepsNewerLabel(t *testing.T) {
	f := newFixture(t)

	f.ctrl.OnClick(f.leftEv)
	f.sched.Advance(500 * time.Millisecond)
	f.ctrl.OnClick(f.rightEv)
	f.sched.Advance(500 * time.Millisecond)

	if f.ctrl.IsHighlighted(f.left) {
		t.Error("left highlight should have reverted")
	}
	if !f.panel.Visible || f.panel.Text != "Right Cube" {
		t.Errorf("right label closed by left's revert: %+v", f.panel)
	}

	f.sched.Advance(500 * time.Millisecond)
	if f.panel.Visible {
		t.Error("label should close with its own revert")
	}
}

func TestClickWhileHoveredSurvivesHoverLeave(t *testing.T) {
	f := newFixture(t)
	original := f.left.Material
	originalColor := original.Color

	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.OnClick(f.leftEv)
	f.ctrl.OnPointerMove(f.missEv)

	if f.left.Material != original {
		t.Fatal("hover leave must restore the original material")
	}
	if f.left.Material.Color != 0xedaab0 {
		t.Error("click tint lost on hover leave")
	}

	f.sched.Advance(time.Second)
	if f.left.Material.Color != originalColor || f.left.Material.EmissiveColor() != core.Black {
		t.Errorf("material not fully restored: %+v", f.left.Material)
	}
}

func TestRevertWhileHoveredKeepsGlow(t *testing.T) {
	f := newFixture(t)
	original := f.left.Material
	originalColor := original.Color

	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.OnClick(f.leftEv)
	f.sched.Advance(time.Second)

	if f.left.Material.Color != originalColor || f.left.Material.EmissiveColor() != 0x666666 {
		t.Errorf("hovered node after revert: %+v", f.left.Material)
	}

	f.ctrl.OnPointerMove(f.missEv)
	if f.left.Material != original || original.Color != originalColor {
		t.Error("snapshot lost the reverted color")
	}
}

type recordingListener struct {
	begins, touches, ends int
}

func (r *recordingListener) BeginInteraction(time.Time) { r.begins++ }
func (r *recordingListener) TouchInteraction(time.Time) { r.touches++ }
func (r *recordingListener) EndInteraction(time.Time)   { r.ends++ }

func TestActivityListener(t *testing.T) {
	f := newFixture(t)
	l := &recordingListener{}
	f.ctrl.SetActivityListener(l)

	f.ctrl.OnPointerDown(f.leftEv)
	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.OnPointerUp(f.leftEv)
	f.ctrl.OnClick(f.leftEv)

	if l.begins != 1 || l.touches != 2 || l.ends != 1 {
		t.Errorf("listener = %+v", *l)
	}
}

func TestPointerTracksNDC(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnPointerMove(PointerEvent{X: 150, Y: 150, Viewport: testViewport, Inside: true})
	if p := f.ctrl.Pointer(); !approx(p[0], -0.5) || !approx(p[1], 0.5) {
		t.Errorf("pointer = %v, want (-0.5, 0.5)", p)
	}
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	leftOriginal := f.left.Material
	leftColor := leftOriginal.Color

	f.ctrl.OnClick(f.leftEv)
	f.ctrl.OnClick(f.rightEv)
	f.ctrl.OnPointerMove(f.leftEv)
	f.ctrl.Reset()

	if f.ctrl.PendingReverts() != 0 || f.sched.Pending() != 0 {
		t.Error("timers left after Reset")
	}
	if f.left.Material != leftOriginal || leftOriginal.Color != leftColor {
		t.Errorf("left not restored: %+v", f.left.Material)
	}
	if f.panel.Visible || f.ctrl.Hovered() != nil {
		t.Error("Reset must clear hover and label")
	}
}
