package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NodeID identifies a node within its scene
type NodeID uint32

// Node is an element of the scene graph. Groups have no mesh; mesh nodes
// are pickable unless Pickable is cleared. The parent pointer is a
// back-reference only; children are owned by their parent.
type Node struct {
	ID   NodeID
	Name string

	// Local transform; rotation is Euler XYZ in radians
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	Mesh          *Mesh
	Material      *Material
	Pickable      bool
	CastShadow    bool
	ReceiveShadow bool

	parent   *Node
	children []*Node
}

// NewGroup creates an empty transform node
func NewGroup(name string) *Node {
	return &Node{Name: name, Scale: mgl32.Vec3{1, 1, 1}}
}

// NewMeshNode creates a pickable node drawing mesh with mat
func NewMeshNode(name string, mesh *Mesh, mat *Material) *Node {
	n := NewGroup(name)
	n.Mesh = mesh
	n.Material = mat
	n.Pickable = true
	return n
}

// Parent returns the parent node or nil for a root
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list; callers must not modify it
func (n *Node) Children() []*Node {
	return n.children
}

// Add attaches children, detaching them from any previous parent.
// Adding a node to itself or to one of its descendants is ignored.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n || c.isAncestorOf(n) {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child if it belongs to n
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Traverse visits n and its descendants depth-first in insertion order.
// Returning false from visit skips the node's children.
func (n *Node) Traverse(visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Traverse(visit)
	}
}

// Find returns the first node named name
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Label returns the display name of n or of its nearest named ancestor.
// The walk is bounded by the depth of the graph and stops at the root.
func (n *Node) Label() (string, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Name != "" {
			return cur.Name, true
		}
	}
	return "", false
}

// IsPickable reports whether rays are tested against this node
func (n *Node) IsPickable() bool {
	return n.Pickable && n.Mesh != nil
}

// LocalMatrix returns T * Rx * Ry * Rz * S
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl32.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation[2]))
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix composes local matrices from the root down to n
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldCenter returns the world-space center of the mesh bounds, or the
// node origin for groups
func (n *Node) WorldCenter() mgl32.Vec3 {
	local := mgl32.Vec3{}
	if n.Mesh != nil {
		local = n.Mesh.Center()
	}
	return mgl32.TransformCoordinate(local, n.WorldMatrix())
}

// Raycast intersects a world-space ray with the node's mesh and returns the
// distance along the ray. Degenerate transforms never hit.
func (n *Node) Raycast(ray Ray) (float32, bool) {
	if n.Mesh == nil {
		return 0, false
	}
	world := n.WorldMatrix()
	if world.Det() == 0 {
		return 0, false
	}
	return ray.Transform(world.Inv()).IntersectMesh(n.Mesh)
}
