package simulation

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"toyviewer/core"
)

// Orbit circles a camera around Target at a fixed radius and height.
//
// Interaction state is explicit: BeginInteraction holds the orbit until
// EndInteraction, and every interaction (including TouchInteraction)
// restarts the ResumeDelay countdown. While held the angular speed eases
// to zero; afterwards it eases back to full speed.
type Orbit struct {
	Radius       float32
	Height       float32
	AngularSpeed float32 // radians per second
	ResumeDelay  time.Duration
	Target       mgl32.Vec3
	AutoRotate   bool

	angle     float32
	speed     float64 // fraction of AngularSpeed, eased by spring
	speedVel  float64
	spring    harmonica.Spring
	lastFrame time.Time

	interacting     bool
	lastInteraction time.Time
}

// NewOrbit creates an orbit that is stepped about once per frameInterval
func NewOrbit(radius, height, angularSpeed float32, resumeDelay, frameInterval time.Duration) *Orbit {
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	return &Orbit{
		Radius:       radius,
		Height:       height,
		AngularSpeed: angularSpeed,
		ResumeDelay:  resumeDelay,
		AutoRotate:   true,
		speed:        1,
		// Critically damped so the camera never overshoots
		spring: harmonica.NewSpring(frameInterval.Seconds(), 6.0, 1.0),
	}
}

// Angle returns the current orbit angle in radians, measured from +X towards +Z
func (o *Orbit) Angle() float32 {
	return o.angle
}

// SetAngle jumps to angle
func (o *Orbit) SetAngle(angle float32) {
	o.angle = angle
}

// Speed returns the current eased speed factor in [0, 1]
func (o *Orbit) Speed() float32 {
	return float32(o.speed)
}

func (o *Orbit) BeginInteraction(t time.Time) {
	o.interacting = true
	o.lastInteraction = t
}

func (o *Orbit) TouchInteraction(t time.Time) {
	o.lastInteraction = t
}

func (o *Orbit) EndInteraction(t time.Time) {
	o.interacting = false
	o.lastInteraction = t
}

// Interacting reports whether a pointer is held down
func (o *Orbit) Interacting() bool {
	return o.interacting
}

// Holding reports whether rotation is paused at now
func (o *Orbit) Holding(now time.Time) bool {
	if o.interacting {
		return true
	}
	if o.lastInteraction.IsZero() {
		return false
	}
	return now.Sub(o.lastInteraction) < o.ResumeDelay
}

// Update advances the orbit to now and places cam on it
func (o *Orbit) Update(now time.Time, cam *core.Camera) {
	target := 1.0
	if !o.AutoRotate || o.Holding(now) {
		target = 0
	}

	var dt float32
	if o.lastFrame.IsZero() {
		// First frame starts at rest in the target state
		o.speed, o.speedVel = target, 0
	} else {
		dt = max(float32(now.Sub(o.lastFrame).Seconds()), 0)
	}
	o.lastFrame = now
	o.speed, o.speedVel = o.spring.Update(o.speed, o.speedVel, target)
	if target == 0 && o.speed < 1e-3 {
		o.speed, o.speedVel = 0, 0
	}
	o.speed = min(max(o.speed, 0), 1)

	o.angle += o.AngularSpeed * float32(o.speed) * dt
	o.angle = math32.Mod(o.angle, 2*math32.Pi)

	if cam != nil {
		o.Place(cam)
	}
}

// Place moves cam to the current orbit position looking at Target
func (o *Orbit) Place(cam *core.Camera) {
	x, z := core.PolarToCartesian(core.Polar{Radius: o.Radius, Theta: o.angle})
	cam.Position = mgl32.Vec3{o.Target[0] + x, o.Target[1] + o.Height, o.Target[2] + z}
	cam.Target = o.Target
}
