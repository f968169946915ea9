/* handlers.go
 * Contains the HTTP handlers of the web server and the route table shared by Start and the tests
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer creates a Server from cfg
func NewServer(cfg Config) *Server {
	return &Server{
		api:     cfg.API,
		metrics: cfg.Metrics,
		started: time.Now(),
	}
}

// routes binds the handler methods to their paths
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.HealthHandler)
	mux.HandleFunc("/readyz", s.ReadyHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	return mux
}

// HealthHandler HTTP endpoint reporting that the process is up
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes a JSON HealthResponse with status 200, or 405 for anything but GET and HEAD
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.writeStatus(w, r, http.StatusOK, "ok")
}

// ReadyHandler HTTP endpoint reporting whether the session store answers
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes a JSON HealthResponse with status 200 when mongo answers, 503 otherwise
func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.api == nil {
		s.writeStatus(w, r, http.StatusServiceUnavailable, "starting")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	if err := s.api.Ready(ctx); err != nil {
		log.Println("readiness check failed:", err)
		s.writeStatus(w, r, http.StatusServiceUnavailable, "unavailable")
		return
	}
	s.writeStatus(w, r, http.StatusOK, "ok")
}

func (s *Server) writeStatus(w http.ResponseWriter, r *http.Request, code int, status string) {
	body, err := json.Marshal(HealthResponse{
		Status: status,
		Uptime: time.Since(s.started).Round(time.Second).String(),
	})
	if err != nil {
		log.Println("failed to encode health response:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodGet {
		w.Write(body)
	}
}
