// Package server exposes analysis results for a project directory over
// HTTP, for an external interactive renderer.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/analysis"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/scene"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

// Server is the local development server.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/analysis", s.handleAnalysis)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("spiral server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// load reads the project spec fresh on every request so edits to
// spirals.yaml show up without a restart.
func (s *Server) load(w http.ResponseWriter) (*spec.Project, bool) {
	project, err := spec.LoadProject(s.projectPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return project, true
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Spiral</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Double Conical Spiral</h1>
<p>Renderer not embedded. Fetch <code>/api/analysis</code> or <code>/api/scene</code> for JSON results.</p>
</div>
</body></html>`)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	project, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, project)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	project, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, analysis.AnalyzeProject(project))
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	project, ok := s.load(w)
	if !ok {
		return
	}

	reports := make(map[string]any, len(project.Configurations))
	for _, o := range analysis.AnalyzeProject(project) {
		reports[o.Name] = o.Report
	}
	writeJSON(w, reports)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	project, ok := s.load(w)
	if !ok {
		return
	}

	docs := make([]*scene.Document, 0, len(project.Configurations))
	for _, o := range analysis.AnalyzeProject(project) {
		if o.Result != nil {
			docs = append(docs, scene.Assemble(o.Result))
		}
	}
	writeJSON(w, docs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
