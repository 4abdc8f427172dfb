package main

import (
	"toyviewer/core"
	"toyviewer/interaction"
	"toyviewer/viewer"
)

// Client -> server
type PointerMessage struct {
	Type   string  `json:"type"` // pointermove, pointerdown, pointerup, click
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Inside *bool   `json:"inside,omitempty"`
}

// Server -> client, sent once per connection
type SceneMessage struct {
	Type       string      `json:"type"`
	Background string      `json:"background"`
	Nodes      []NodeData  `json:"nodes"`
	Lights     []LightData `json:"lights"`
	Stars      *StarData   `json:"stars,omitempty"`
	Camera     CameraData  `json:"camera"`
}

type NodeData struct {
	ID            core.NodeID   `json:"id"`
	Parent        core.NodeID   `json:"parent"`
	Name          string        `json:"name,omitempty"`
	Position      [3]float32    `json:"position"`
	Rotation      [3]float32    `json:"rotation"`
	Scale         [3]float32    `json:"scale"`
	Mesh          *MeshData     `json:"mesh,omitempty"`
	Material      *MaterialData `json:"material,omitempty"`
	CastShadow    bool          `json:"castShadow"`
	ReceiveShadow bool          `json:"receiveShadow"`
}

type MeshData struct {
	Kind      core.ShapeKind `json:"kind"`
	Positions []float32      `json:"positions"`
	Indices   []uint32       `json:"indices"`
}

type MaterialData struct {
	ID        core.NodeID `json:"id"`
	Color     core.Color  `json:"color"`
	Emissive  *core.Color `json:"emissive,omitempty"`
	Roughness float32     `json:"roughness"`
	Metalness float32     `json:"metalness"`
}

type LightData struct {
	Kind          core.LightKind `json:"kind"`
	Color         core.Color     `json:"color"`
	Intensity     float32        `json:"intensity"`
	Position      [3]float32     `json:"position"`
	CastShadow    bool           `json:"castShadow"`
	ShadowMapSize int            `json:"shadowMapSize,omitempty"`
	ShadowNear    float32        `json:"shadowNear,omitempty"`
	ShadowFar     float32        `json:"shadowFar,omitempty"`
}

type StarData struct {
	Positions []float32  `json:"positions"`
	Color     core.Color `json:"color"`
	Size      float32    `json:"size"`
}

type CameraData struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
	FovY     float32    `json:"fov"`
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
}

// Server -> client, sent on every tick with something to report
type FrameMessage struct {
	Type       string          `json:"type"`
	Camera     *CameraData     `json:"camera,omitempty"`
	Transforms []TransformData `json:"transforms,omitempty"`
	Materials  []MaterialData  `json:"materials,omitempty"`
	Label      *LabelData      `json:"label,omitempty"`
	Hovered    core.NodeID     `json:"hovered"`
}

type TransformData struct {
	ID       core.NodeID `json:"id"`
	Position [3]float32  `json:"position"`
}

type LabelData struct {
	Text    string  `json:"text"`
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Visible bool    `json:"visible"`
}

func (m PointerMessage) event(fallback interaction.Viewport) interaction.PointerEvent {
	vp := interaction.Viewport{Width: m.Width, Height: m.Height}
	if !vp.Valid() {
		vp = fallback
	}
	inside := true
	if m.Inside != nil {
		inside = *m.Inside
	}
	return interaction.PointerEvent{X: m.X, Y: m.Y, Viewport: vp, Inside: inside}
}

func createSceneMessage(v *viewer.Viewer) SceneMessage {
	msg := SceneMessage{
		Type:       "scene",
		Background: v.Scene.Background.String(),
		Camera:     cameraData(v.Camera),
	}

	for _, n := range v.Scene.Nodes() {
		nd := NodeData{
			ID:            n.ID,
			Name:          n.Name,
			Position:      n.Position,
			Rotation:      n.Rotation,
			Scale:         n.Scale,
			CastShadow:    n.CastShadow,
			ReceiveShadow: n.ReceiveShadow,
		}
		if p := n.Parent(); p != nil {
			nd.Parent = p.ID
		}
		if n.Mesh != nil {
			md := &MeshData{Kind: n.Mesh.Kind, Indices: n.Mesh.Indices}
			md.Positions = make([]float32, 0, 3*len(n.Mesh.Positions))
			for _, p := range n.Mesh.Positions {
				md.Positions = append(md.Positions, p[0], p[1], p[2])
			}
			nd.Mesh = md
		}
		if n.Material != nil {
			m := materialData(n)
			nd.Material = &m
		}
		msg.Nodes = append(msg.Nodes, nd)
	}

	for _, l := range v.Scene.Lights {
		msg.Lights = append(msg.Lights, LightData{
			Kind:          l.Kind,
			Color:         l.Color,
			Intensity:     l.Intensity,
			Position:      l.Position,
			CastShadow:    l.CastShadow,
			ShadowMapSize: l.ShadowMapSize,
			ShadowNear:    l.ShadowNear,
			ShadowFar:     l.ShadowFar,
		})
	}

	if sf := v.Scene.Stars; sf != nil {
		stars := &StarData{Color: sf.Color, Size: sf.Size}
		stars.Positions = make([]float32, 0, 3*len(sf.Positions))
		for _, p := range sf.Positions {
			stars.Positions = append(stars.Positions, p[0], p[1], p[2])
		}
		msg.Stars = stars
	}
	return msg
}

func cameraData(c *core.Camera) CameraData {
	return CameraData{
		Position: c.Position,
		Target:   c.Target,
		FovY:     c.FovY,
		Near:     c.Near,
		Far:      c.Far,
	}
}

func materialData(n *core.Node) MaterialData {
	m := n.Material
	md := MaterialData{
		ID:        n.ID,
		Color:     m.Color,
		Roughness: m.Roughness,
		Metalness: m.Metalness,
	}
	if m.SupportsEmissive() {
		e := m.EmissiveColor()
		md.Emissive = &e
	}
	return md
}
