package interaction

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"toyviewer/core"
)

// PointerEvent is a pointer position in viewport pixels. Inside is false
// when the event target was not the viewer surface (for example the label
// panel itself).
type PointerEvent struct {
	X, Y     float32
	Viewport Viewport
	Inside   bool
}

// Options tune the highlight and label behaviour
type Options struct {
	HoverEmissive core.Color
	ClickColor    core.Color
	RevertDelay   time.Duration
	LabelOffsetX  float32
	LabelOffsetY  float32
	UnknownLabel  string
}

// DefaultOptions returns the stock viewer behaviour
func DefaultOptions() Options {
	return Options{
		HoverEmissive: 0x666666,
		ClickColor:    0xedaab0,
		RevertDelay:   1000 * time.Millisecond,
		LabelOffsetX:  10,
		LabelOffsetY:  10,
		UnknownLabel:  "Unknown Part",
	}
}

// ActivityListener is told about pointer activity, e.g. to pause an orbit
type ActivityListener interface {
	BeginInteraction(t time.Time)
	TouchInteraction(t time.Time)
	EndInteraction(t time.Time)
}

type hoverRecord struct {
	node *core.Node
	// original material, nil when the node had no emissive channel
	snapshot *core.Material
}

type pendingRevert struct {
	color    core.Color
	hasColor bool
	timer    Timer
}

// Controller owns hover and click-highlight state for one viewer. All
// methods, and every callback it schedules, must run on one goroutine.
//
// A hovered node's material is swapped for a highlighted copy and the
// original is put back when the hover moves. A clicked node is tinted and
// reverted after Options.RevertDelay; at most one revert is pending per
// node, and clicking again restarts it while keeping the first captured
// color.
type Controller struct {
	camera *core.Camera
	root   *core.Node
	panel  LabelPanel
	sched  Scheduler
	opts   Options

	activity ActivityListener

	pointer    mgl32.Vec2
	hover      hoverRecord
	reverts    map[*core.Node]*pendingRevert
	labelOwner *core.Node
}

// NewController wires a controller to a camera, a scene root, a label
// panel and a scheduler
func NewController(cam *core.Camera, root *core.Node, panel LabelPanel, sched Scheduler, opts Options) *Controller {
	return &Controller{
		camera:  cam,
		root:    root,
		panel:   panel,
		sched:   sched,
		opts:    opts,
		reverts: make(map[*core.Node]*pendingRevert),
	}
}

// SetActivityListener registers l for pointer activity; nil disables it
func (c *Controller) SetActivityListener(l ActivityListener) {
	c.activity = l
}

// Pointer returns the last pointer position in NDC
func (c *Controller) Pointer() mgl32.Vec2 {
	return c.pointer
}

// Hovered returns the node under the pointer, or nil
func (c *Controller) Hovered() *core.Node {
	return c.hover.node
}

// PendingReverts returns how many click highlights are still active
func (c *Controller) PendingReverts() int {
	return len(c.reverts)
}

// IsHighlighted reports whether n currently carries the click color
func (c *Controller) IsHighlighted(n *core.Node) bool {
	_, ok := c.reverts[n]
	return ok
}

// Pick resolves the node under ev without changing any state
func (c *Controller) Pick(ev PointerEvent) *core.Node {
	return ResolvePick(ev.X, ev.Y, ev.Viewport, c.camera, c.root)
}

// OnPointerMove updates the hover highlight
func (c *Controller) OnPointerMove(ev PointerEvent) {
	c.track(ev)
	if c.activity != nil {
		c.activity.TouchInteraction(c.sched.Now())
	}
	c.setHover(c.Pick(ev))
}

// OnPointerDown starts a user interaction
func (c *Controller) OnPointerDown(ev PointerEvent) {
	c.track(ev)
	if c.activity != nil {
		c.activity.BeginInteraction(c.sched.Now())
	}
}

// OnPointerUp ends a user interaction; it never picks
func (c *Controller) OnPointerUp(ev PointerEvent) {
	if c.activity != nil {
		c.activity.EndInteraction(c.sched.Now())
	}
}

// OnClick tints the picked node, shows its label and schedules the revert.
// Clicks outside the viewer close the label afterwards.
func (c *Controller) OnClick(ev PointerEvent) {
	c.track(ev)
	if c.activity != nil {
		c.activity.TouchInteraction(c.sched.Now())
	}

	if node := c.Pick(ev); node != nil {
		c.highlight(node)
		c.showLabel(node, ev)
	}

	if !ev.Inside {
		c.panel.Hide()
		c.labelOwner = nil
	}
}

// Reset cancels every pending revert, restoring colors immediately, drops
// the hover highlight and hides the label
func (c *Controller) Reset() {
	for node, p := range c.reverts {
		p.timer.Stop()
		c.restoreColor(node, p)
	}
	clear(c.reverts)
	c.setHover(nil)
	c.panel.Hide()
	c.labelOwner = nil
}

func (c *Controller) track(ev PointerEvent) {
	if !ev.Viewport.Valid() {
		return
	}
	x, y := core.ScreenToNDC(ev.X, ev.Y, ev.Viewport.Width, ev.Viewport.Height)
	c.pointer = mgl32.Vec2{x, y}
}

func (c *Controller) setHover(node *core.Node) {
	if node == c.hover.node {
		return
	}

	if prev := c.hover; prev.node != nil && prev.snapshot != nil {
		prev.node.Material = prev.snapshot
	}
	c.hover = hoverRecord{node: node}

	// Without an emissive channel the node is hovered but left untouched
	if node == nil || !node.Material.SupportsEmissive() {
		return
	}
	c.hover.snapshot = node.Material
	glow := node.Material.Clone()
	glow.SetEmissive(c.opts.HoverEmissive)
	node.Material = glow
}

func (c *Controller) highlight(node *core.Node) {
	p, pending := c.reverts[node]
	if pending {
		p.timer.Stop()
	} else {
		p = &pendingRevert{}
		if node.Material != nil {
			p.color = node.Material.Color
			p.hasColor = true
		}
		c.reverts[node] = p
	}

	if node.Material != nil {
		node.Material.Color = c.opts.ClickColor
	}
	// Keep the tint if the hover moves away before the revert
	if c.hover.node == node && c.hover.snapshot != nil {
		c.hover.snapshot.Color = c.opts.ClickColor
	}

	p.timer = c.sched.AfterFunc(c.opts.RevertDelay, func() {
		c.revert(node, p)
	})
}

func (c *Controller) revert(node *core.Node, p *pendingRevert) {
	if c.reverts[node] != p {
		return
	}
	delete(c.reverts, node)
	c.restoreColor(node, p)
	if c.labelOwner == node {
		c.panel.Hide()
		c.labelOwner = nil
	}
}

func (c *Controller) restoreColor(node *core.Node, p *pendingRevert) {
	if !p.hasColor {
		return
	}
	if node.Material != nil {
		node.Material.Color = p.color
	}
	if c.hover.node == node && c.hover.snapshot != nil {
		c.hover.snapshot.Color = p.color
	}
}

func (c *Controller) showLabel(node *core.Node, ev PointerEvent) {
	text, ok := node.Label()
	if !ok {
		text = c.opts.UnknownLabel
	}
	c.panel.SetText(text)
	c.panel.ShowAt(ev.X+c.opts.LabelOffsetX, ev.Y+c.opts.LabelOffsetY)
	c.labelOwner = node
}
