package core

// Scene is the root of the graph plus the lights and decorations that do
// not take part in picking.
type Scene struct {
	Root       *Node
	Lights     []Light
	Stars      *StarField
	Background Color

	nodes []*Node
}

// NewScene creates a scene with an empty root group
func NewScene() *Scene {
	return &Scene{Root: NewGroup("")}
}

// Index assigns IDs to every node in traversal order, starting at 1.
// Call after construction and after structural changes.
func (s *Scene) Index() {
	s.nodes = s.nodes[:0]
	s.Root.Traverse(func(n *Node) bool {
		s.nodes = append(s.nodes, n)
		n.ID = NodeID(len(s.nodes))
		return true
	})
}

// Nodes returns every indexed node in traversal order
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Node looks up an indexed node
func (s *Scene) Node(id NodeID) *Node {
	if id == 0 || int(id) > len(s.nodes) {
		return nil
	}
	return s.nodes[id-1]
}

// Find returns the first node named name
func (s *Scene) Find(name string) *Node {
	return s.Root.Find(name)
}

// AmbientLight sums the ambient contribution of every ambient light
func (s *Scene) AmbientLight() Color {
	total := Black
	for _, l := range s.Lights {
		if l.Kind == LightAmbient {
			total = total.Add(l.Color.Scale(l.Intensity))
		}
	}
	return total
}
