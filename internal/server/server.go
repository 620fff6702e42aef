package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/FromJayLee/starfield/pkg/profile"
	"github.com/FromJayLee/starfield/pkg/render"
	"github.com/FromJayLee/starfield/pkg/scene"
)

// Server is the local development server for previewing generated scenes.
// Every request composes a fresh scene; nothing is shared between
// generations, so concurrent requests cannot observe partial state.
type Server struct {
	projectPath string
	port        int
	log         *zap.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int, log *zap.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         log,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("starfield dev server starting",
		zap.String("addr", "http://localhost"+addr),
		zap.String("project", s.projectPath))

	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the route table. Split from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/profile", s.handleProfile)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /render.png", s.handleRender)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Starfield</title></head>
<body style="margin:0;background:#070B14;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Starfield</h1>
<p>Preview: <a style="color:#AFC9FF" href="/render.png">/render.png</a> &middot; Scene data: <a style="color:#AFC9FF" href="/api/scene">/api/scene</a></p>
</div>
</body></html>`)
}

// compose loads the project profile, applies query overrides, and runs one
// generation pass.
func (s *Server) compose(r *http.Request) (*scene.Scene, *profile.Profile, error) {
	p, err := profile.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading profile: %w", err)
	}

	seed := p.Seed
	width, height := p.Width, p.Height
	q := r.URL.Query()
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid seed %q", v)
		}
		seed = int32(n)
	}
	if v := q.Get("width"); v != "" {
		if width, err = strconv.Atoi(v); err != nil {
			return nil, nil, fmt.Errorf("invalid width %q", v)
		}
	}
	if v := q.Get("height"); v != "" {
		if height, err = strconv.Atoi(v); err != nil {
			return nil, nil, fmt.Errorf("invalid height %q", v)
		}
	}

	sc, err := scene.Compose(seed, width, height, p.LayerSpecs())
	if err != nil {
		return nil, nil, err
	}
	return sc, p, nil
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	sc, _, err := s.compose(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.Debug("scene generated",
		zap.Int32("seed", sc.Seed),
		zap.Int("records", sc.TotalRecords()))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sc)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := profile.LoadProject(s.projectPath)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	p, err := profile.LoadProject(s.projectPath)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	report := profile.Validate(p)
	if report.Valid {
		if sc, _, err := s.compose(r); err == nil {
			report.Merge(scene.ValidateScene(sc, p.LayerSpecs()))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, p, err := s.compose(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.Encode(sc, p.Palette, w); err != nil {
		s.log.Error("render failed", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
