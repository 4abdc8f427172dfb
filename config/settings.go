package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"toyviewer/core"
)

// ErrUnknownFormat is returned for settings files that are neither JSON nor YAML
var ErrUnknownFormat = errors.New("unknown settings format")

type Settings struct {
	Viewer      ViewerSettings      `json:"viewer" yaml:"viewer"`
	Orbit       OrbitSettings       `json:"orbit" yaml:"orbit"`
	Interaction InteractionSettings `json:"interaction" yaml:"interaction"`
	Animation   AnimationSettings   `json:"animation" yaml:"animation"`
	Scene       SceneSettings       `json:"scene" yaml:"scene"`
	Server      ServerSettings      `json:"server" yaml:"server"`
}

type ViewerSettings struct {
	Width      int        `json:"width" yaml:"width"`
	Height     int        `json:"height" yaml:"height"`
	FOV        float32    `json:"fov" yaml:"fov"`
	Near       float32    `json:"near" yaml:"near"`
	Far        float32    `json:"far" yaml:"far"`
	Background core.Color `json:"background" yaml:"background"`
	TargetFPS  int        `json:"targetFps" yaml:"targetFps"`
}

type OrbitSettings struct {
	Radius        float32 `json:"radius" yaml:"radius"`
	Height        float32 `json:"height" yaml:"height"`
	AngularSpeed  float32 `json:"angularSpeed" yaml:"angularSpeed"` // rad/s
	ResumeDelayMs int     `json:"resumeDelayMs" yaml:"resumeDelayMs"`
	AutoRotate    bool    `json:"autoRotate" yaml:"autoRotate"`
}

type InteractionSettings struct {
	HoverEmissive core.Color `json:"hoverEmissive" yaml:"hoverEmissive"`
	ClickColor    core.Color `json:"clickColor" yaml:"clickColor"`
	RevertDelayMs int        `json:"revertDelayMs" yaml:"revertDelayMs"`
	LabelOffsetX  float32    `json:"labelOffsetX" yaml:"labelOffsetX"`
	LabelOffsetY  float32    `json:"labelOffsetY" yaml:"labelOffsetY"`
	UnknownLabel  string     `json:"unknownLabel" yaml:"unknownLabel"`
}

type AnimationSettings struct {
	Match     string  `json:"match" yaml:"match"`
	Speed     float32 `json:"speed" yaml:"speed"`
	Amplitude float32 `json:"amplitude" yaml:"amplitude"`
}

type SceneSettings struct {
	StarCount  int     `json:"starCount" yaml:"starCount"`
	StarExtent float32 `json:"starExtent" yaml:"starExtent"`
	StarSeed   uint64  `json:"starSeed" yaml:"starSeed"`
}

type ServerSettings struct {
	Port             int    `json:"port" yaml:"port"`
	UpdateIntervalMs int    `json:"updateIntervalMs" yaml:"updateIntervalMs"`
	WebDir           string `json:"webDir" yaml:"webDir"`
}

// Default returns the stock viewer settings
func Default() Settings {
	return Settings{
		Viewer: ViewerSettings{
			Width:      1280,
			Height:     720,
			FOV:        60,
			Near:       0.1,
			Far:        1000,
			Background: core.Black,
			TargetFPS:  60,
		},
		Orbit: OrbitSettings{
			Radius:        8,
			Height:        5,
			AngularSpeed:  0.2,
			ResumeDelayMs: 2000,
			AutoRotate:    true,
		},
		Interaction: InteractionSettings{
			HoverEmissive: 0x666666,
			ClickColor:    0xedaab0,
			RevertDelayMs: 1000,
			LabelOffsetX:  10,
			LabelOffsetY:  10,
			UnknownLabel:  "Unknown Part",
		},
		Animation: AnimationSettings{
			Match:     "Teddy Bear",
			Speed:     1,
			Amplitude: 0.05,
		},
		Scene: SceneSettings{
			StarCount:  5000,
			StarExtent: 200,
			StarSeed:   1,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 33,
			WebDir:           "web",
		},
	}
}

// Load reads settings from path. The decoder is chosen by extension
// (.json, .yaml, .yml). A missing file yields the defaults; keys absent from
// the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	var decode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = func(f *os.File) error { return json.NewDecoder(f).Decode(&s) }
	case ".yaml", ".yml":
		decode = func(f *os.File) error { return yaml.NewDecoder(f).Decode(&s) }
	default:
		return s, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	if err := decode(file); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("error parsing %s: %w", path, err)
	}
	s.backfill()
	return s, nil
}

// backfill replaces zero values that would break the viewer with defaults
func (s *Settings) backfill() {
	d := Default()
	fill := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	fillF := func(v *float32, def float32) {
		if *v <= 0 {
			*v = def
		}
	}

	fill(&s.Viewer.Width, d.Viewer.Width)
	fill(&s.Viewer.Height, d.Viewer.Height)
	fill(&s.Viewer.TargetFPS, d.Viewer.TargetFPS)
	fillF(&s.Viewer.FOV, d.Viewer.FOV)
	fillF(&s.Viewer.Near, d.Viewer.Near)
	fillF(&s.Viewer.Far, d.Viewer.Far)
	fillF(&s.Orbit.Radius, d.Orbit.Radius)
	fill(&s.Interaction.RevertDelayMs, d.Interaction.RevertDelayMs)
	fill(&s.Server.Port, d.Server.Port)
	fill(&s.Server.UpdateIntervalMs, d.Server.UpdateIntervalMs)
	if s.Interaction.UnknownLabel == "" {
		s.Interaction.UnknownLabel = d.Interaction.UnknownLabel
	}
	if s.Server.WebDir == "" {
		s.Server.WebDir = d.Server.WebDir
	}
	if s.Viewer.Far <= s.Viewer.Near {
		s.Viewer.Near, s.Viewer.Far = d.Viewer.Near, d.Viewer.Far
	}
}

// FrameInterval is the time between viewer updates
func (s Settings) FrameInterval() time.Duration {
	if s.Viewer.TargetFPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.Viewer.TargetFPS)
}

func (o OrbitSettings) ResumeDelay() time.Duration {
	return time.Duration(o.ResumeDelayMs) * time.Millisecond
}

func (i InteractionSettings) RevertDelay() time.Duration {
	return time.Duration(i.RevertDelayMs) * time.Millisecond
}

func (s ServerSettings) UpdateInterval() time.Duration {
	return time.Duration(s.UpdateIntervalMs) * time.Millisecond
}

// Addr is the listen address for the HTTP server
func (s ServerSettings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
