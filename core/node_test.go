package core

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNodeLabel(t *testing.T) {
	root := NewGroup("")
	bear := NewGroup("Teddy Bear")
	limb := NewGroup("")
	paw := NewMeshNode("", NewBoxMesh(1, 1, 1), NewStandardMaterial(0xffc0cb, 1, 0))
	eye := NewMeshNode("Teddy Bear Left Eye", NewBoxMesh(1, 1, 1), NewStandardMaterial(0x333333, 1, 0))
	ground := NewMeshNode("", NewPlaneMesh(1, 1), NewStandardMaterial(0xaafeed, 1, 0))

	root.Add(bear, ground)
	bear.Add(limb, eye)
	limb.Add(paw)

	tests := []struct {
		name   string
		node   *Node
		want   string
		wantOK bool
	}{
		{name: "Own name", node: eye, want: "Teddy Bear Left Eye", wantOK: true},
		{name: "Grandparent name", node: paw, want: "Teddy Bear", wantOK: true},
		{name: "No named ancestor", node: ground, want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.node.Label()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Label() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNodeAddReparentsAndRejectsCycles(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")

	a.Add(c)
	b.Add(c)
	if c.Parent() != b || len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Fatal("Add should move c from a to b")
	}

	// c is a descendant of b, so b under c would form a cycle
	c.Add(b)
	if b.Parent() != nil {
		t.Error("cycle was created")
	}
	a.Add(a)
	if a.Parent() != nil || len(a.Children()) != 0 {
		t.Error("self add must be ignored")
	}
}

func TestNodeTraverseOrder(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	a1 := NewGroup("a1")
	root.Add(a, b)
	a.Add(a1)

	var order []string
	root.Traverse(func(n *Node) bool {
		order = append(order, n.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if root.Find("a1") != a1 || root.Find("missing") != nil {
		t.Error("Find returned the wrong node")
	}
}

func TestNodeWorldMatrix(t *testing.T) {
	parent := NewGroup("parent")
	parent.Position = mgl32.Vec3{0, 0.5, 0}
	parent.Rotation = mgl32.Vec3{0, math32.Pi / 2, 0}
	child := NewMeshNode("child", NewBoxMesh(1, 1, 1), NewStandardMaterial(White, 1, 0))
	child.Position = mgl32.Vec3{1, 0, 0}
	parent.Add(child)

	// +X rotated 90 degrees about Y lands on -Z
	got := child.WorldCenter()
	want := mgl32.Vec3{0, 0.5, -1}
	if !vecApprox(got, want, 1e-5) {
		t.Errorf("WorldCenter = %v, want %v", got, want)
	}
}

func TestNodeRaycast(t *testing.T) {
	n := NewMeshNode("cube", NewBoxMesh(1, 1, 1), NewStandardMaterial(White, 1, 0))
	n.Position = mgl32.Vec3{0, 0, -5}
	n.Scale = mgl32.Vec3{2, 2, 2}

	ray := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, -1}}
	got, ok := n.Raycast(ray)
	if !ok || !approx(got, 4, 1e-4) {
		t.Errorf("Raycast = %v, %v; want 4, true", got, ok)
	}

	n.Scale = mgl32.Vec3{0, 1, 1}
	if _, ok := n.Raycast(ray); ok {
		t.Error("degenerate transform must not hit")
	}

	group := NewGroup("group")
	if _, ok := group.Raycast(ray); ok || group.IsPickable() {
		t.Error("groups are never hit")
	}
}
