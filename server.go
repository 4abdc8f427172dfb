package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"toyviewer/config"
	"toyviewer/core"
	"toyviewer/interaction"
	"toyviewer/viewer"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Server hosts the browser client and one viewer session per websocket
type Server struct {
	settings config.Settings

	sessions   map[*websocket.Conn]*session
	sessionsMu sync.RWMutex
}

func NewServer(settings config.Settings) *Server {
	return &Server{
		settings: settings,
		sessions: make(map[*websocket.Conn]*session),
	}
}

// Handler routes the page, static assets and the websocket endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	webDir := s.settings.Server.WebDir
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(webDir, "index.html"))
	})
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(webDir, "static")))))
	return mux
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Server.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("Server shutdown error:", err)
		}
		// Hijacked websocket connections are not closed by Shutdown
		s.closeAll()
	}()

	fmt.Printf("Server starting on http://localhost%s\n", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// SessionCount returns the number of connected viewers
func (s *Server) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

func (s *Server) closeAll() {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	for conn := range s.sessions {
		conn.Close()
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	ss := newSession(conn, s.settings)
	s.sessionsMu.Lock()
	s.sessions[conn] = ss
	count := len(s.sessions)
	s.sessionsMu.Unlock()
	log.Printf("Viewer connected from %s (%d active)", r.RemoteAddr, count)

	defer func() {
		s.sessionsMu.Lock()
		delete(s.sessions, conn)
		s.sessionsMu.Unlock()
		log.Printf("Viewer %s disconnected", r.RemoteAddr)
	}()

	if err := ss.write(createSceneMessage(ss.viewer)); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ss.run(s.settings.Server.UpdateInterval())
	}()

	// Pointer events are forwarded to the session loop
	for {
		var msg PointerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("WebSocket read error:", err)
			}
			break
		}
		ss.sched.Post(func() { ss.handle(msg) })
	}

	ss.sched.Close()
	<-done
}

// session owns one viewer; everything except write runs on the loop
// goroutine started by run
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	viewer *viewer.Viewer
	sched  *interaction.LoopScheduler
	screen interaction.Viewport

	sentMaterials map[core.NodeID]MaterialData
	labelVersion  uint64
	hovered       core.NodeID
	camera        CameraData
}

func newSession(conn *websocket.Conn, settings config.Settings) *session {
	sched := interaction.NewLoopScheduler(64)
	v := viewer.New(settings, sched)
	ss := &session{
		conn:   conn,
		viewer: v,
		sched:  sched,
		screen: interaction.Viewport{
			Width:  float32(settings.Viewer.Width),
			Height: float32(settings.Viewer.Height),
		},
		sentMaterials: make(map[core.NodeID]MaterialData),
		camera:        cameraData(v.Camera),
	}
	for _, n := range v.Scene.Nodes() {
		if n.Material != nil {
			ss.sentMaterials[n.ID] = materialData(n)
		}
	}
	return ss
}

func (ss *session) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer ss.viewer.Controller.Reset()

	for {
		select {
		case f := <-ss.sched.Queue():
			f()
		case now := <-ticker.C:
			if err := ss.tick(now); err != nil {
				log.Println("WebSocket write error:", err)
				ss.sched.Close()
				ss.conn.Close()
				return
			}
		case <-ss.sched.Done():
			return
		}
	}
}

func (ss *session) handle(msg PointerMessage) {
	ev := msg.event(ss.screen)
	if msg.Width > 0 && msg.Height > 0 {
		ss.screen = ev.Viewport
		ss.viewer.Resize(int(msg.Width), int(msg.Height))
	}

	ctrl := ss.viewer.Controller
	switch msg.Type {
	case "pointermove":
		ctrl.OnPointerMove(ev)
	case "pointerdown":
		ctrl.OnPointerDown(ev)
	case "pointerup":
		ctrl.OnPointerUp(ev)
	case "click":
		ctrl.OnClick(ev)
	default:
		log.Printf("Unknown message type %q", msg.Type)
	}
}

func (ss *session) tick(now time.Time) error {
	moved := ss.viewer.Step(now)
	frame := ss.createFrame(moved)
	if frame == nil {
		return nil
	}
	return ss.write(frame)
}

// createFrame collects everything that changed since the last frame, or
// returns nil when nothing did
func (ss *session) createFrame(moved []*core.Node) *FrameMessage {
	v := ss.viewer
	frame := &FrameMessage{Type: "frame"}
	changed := false

	if cam := cameraData(v.Camera); cam != ss.camera {
		ss.camera = cam
		frame.Camera = &cam
		changed = true
	}

	for _, n := range moved {
		frame.Transforms = append(frame.Transforms, TransformData{ID: n.ID, Position: n.Position})
		changed = true
	}

	for _, n := range v.Scene.Nodes() {
		if n.Material == nil {
			continue
		}
		md := materialData(n)
		if prev, ok := ss.sentMaterials[n.ID]; ok && sameMaterial(prev, md) {
			continue
		}
		ss.sentMaterials[n.ID] = md
		frame.Materials = append(frame.Materials, md)
		changed = true
	}

	if v.Panel.Version != ss.labelVersion {
		ss.labelVersion = v.Panel.Version
		frame.Label = &LabelData{Text: v.Panel.Text, X: v.Panel.X, Y: v.Panel.Y, Visible: v.Panel.Visible}
		changed = true
	}

	var hovered core.NodeID
	if h := v.Controller.Hovered(); h != nil {
		hovered = h.ID
	}
	if hovered != ss.hovered {
		ss.hovered = hovered
		changed = true
	}
	frame.Hovered = hovered

	if !changed {
		return nil
	}
	return frame
}

func sameMaterial(a, b MaterialData) bool {
	if a.Color != b.Color || a.Roughness != b.Roughness || a.Metalness != b.Metalness {
		return false
	}
	if (a.Emissive == nil) != (b.Emissive == nil) {
		return false
	}
	return a.Emissive == nil || *a.Emissive == *b.Emissive
}

func (ss *session) write(v any) error {
	ss.writeMu.Lock()
	defer ss.writeMu.Unlock()
	ss.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return ss.conn.WriteJSON(v)
}
