package simulation

import (
	"strings"

	"github.com/chewxy/math32"

	"toyviewer/core"
)

// FloatAnimator bobs every node whose name contains Match up and down:
// y = base + sin(2t) * Amplitude * 0.5. Base heights are recorded the first
// time a node is seen.
type FloatAnimator struct {
	Match     string
	Speed     float32
	Amplitude float32

	time float32
	base map[*core.Node]float32
}

// NewFloatAnimator creates an animator for nodes matching match
func NewFloatAnimator(match string, speed, amplitude float32) *FloatAnimator {
	return &FloatAnimator{
		Match:     match,
		Speed:     speed,
		Amplitude: amplitude,
		base:      make(map[*core.Node]float32),
	}
}

// Time returns the accumulated animation time in seconds
func (f *FloatAnimator) Time() float32 {
	return f.time
}

// Update advances the animation by dt seconds and returns the nodes it moved
func (f *FloatAnimator) Update(root *core.Node, dt float32) []*core.Node {
	if root == nil || f.Match == "" {
		return nil
	}
	f.time += dt * f.Speed
	offset := math32.Sin(f.time*2) * f.Amplitude * 0.5

	var moved []*core.Node
	root.Traverse(func(n *core.Node) bool {
		if !strings.Contains(n.Name, f.Match) {
			return true
		}
		base, ok := f.base[n]
		if !ok {
			base = n.Position[1]
			f.base[n] = base
		}
		n.Position[1] = base + offset
		moved = append(moved, n)
		return true
	})
	return moved
}
