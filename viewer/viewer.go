// Package viewer assembles the toy house scene, its camera orbit and
// animation, and the interaction controller into one steppable unit.
// Hosts (the websocket server, the raylib window) own the event loop and
// call into a Viewer from that loop only.
package viewer

import (
	"time"

	"toyviewer/config"
	"toyviewer/core"
	"toyviewer/interaction"
	"toyviewer/simulation"
)

type Viewer struct {
	Settings   config.Settings
	Scene      *core.Scene
	Camera     *core.Camera
	Orbit      *simulation.Orbit
	Float      *simulation.FloatAnimator
	Panel      *interaction.Panel
	Controller *interaction.Controller

	lastStep time.Time
}

// New builds a viewer from settings. Timed reverts run on sched.
func New(s config.Settings, sched interaction.Scheduler) *Viewer {
	scene := core.BuildToyHouse(core.ToyHouseOptions{
		StarCount:  s.Scene.StarCount,
		StarExtent: s.Scene.StarExtent,
		StarSeed:   s.Scene.StarSeed,
		Background: s.Viewer.Background,
	})

	aspect := float32(s.Viewer.Width) / float32(max(s.Viewer.Height, 1))
	cam := core.NewPerspectiveCamera(s.Viewer.FOV, aspect, s.Viewer.Near, s.Viewer.Far)

	orbit := simulation.NewOrbit(s.Orbit.Radius, s.Orbit.Height, s.Orbit.AngularSpeed,
		s.Orbit.ResumeDelay(), s.FrameInterval())
	orbit.AutoRotate = s.Orbit.AutoRotate
	orbit.Place(cam)

	panel := &interaction.Panel{}
	ctrl := interaction.NewController(cam, scene.Root, panel, sched, Options(s.Interaction))
	ctrl.SetActivityListener(orbit)

	return &Viewer{
		Settings:   s,
		Scene:      scene,
		Camera:     cam,
		Orbit:      orbit,
		Float:      simulation.NewFloatAnimator(s.Animation.Match, s.Animation.Speed, s.Animation.Amplitude),
		Panel:      panel,
		Controller: ctrl,
	}
}

// Options converts interaction settings to controller options
func Options(s config.InteractionSettings) interaction.Options {
	return interaction.Options{
		HoverEmissive: s.HoverEmissive,
		ClickColor:    s.ClickColor,
		RevertDelay:   s.RevertDelay(),
		LabelOffsetX:  s.LabelOffsetX,
		LabelOffsetY:  s.LabelOffsetY,
		UnknownLabel:  s.UnknownLabel,
	}
}

// Step advances the orbit and the float animation to now and returns the
// nodes whose transforms changed
func (v *Viewer) Step(now time.Time) []*core.Node {
	var dt float32
	if !v.lastStep.IsZero() {
		dt = max(float32(now.Sub(v.lastStep).Seconds()), 0)
	}
	v.lastStep = now

	v.Orbit.Update(now, v.Camera)
	return v.Float.Update(v.Scene.Root, dt)
}

// Resize keeps the camera aspect in line with the host surface
func (v *Viewer) Resize(width, height int) {
	if width > 0 && height > 0 {
		v.Camera.Aspect = float32(width) / float32(height)
	}
}
