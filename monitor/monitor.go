// Package monitor serves a read-only view of the running client over HTTP:
// the session status as JSON and the last painted frame as PNG. It exists to
// diagnose protocol mismatches without attaching a debugger to the game loop.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/luka333z/snake/client"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URI_STATUS = "/status"
	URI_FRAME  = "/frame.png"

	maxThumb = 2048
)

type Server struct {
	router *way.Router

	mu     sync.RWMutex
	status client.Status
	frame  *image.NRGBA
}

func New() *Server {
	s := &Server{}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_STATUS, s.handleStatus())
	s.router.HandleFunc("GET", URI_FRAME, s.handleFrame())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Publish stores copies; the game loop keeps ownership of its own values.
// A nil frame keeps the previous one.
func (s *Server) Publish(status client.Status, frame image.Image) {
	var clone *image.NRGBA
	if frame != nil {
		clone = imaging.Clone(frame)
	}
	s.mu.Lock()
	s.status = status
	if clone != nil {
		s.frame = clone
	}
	s.mu.Unlock()
}

func (s *Server) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		status := s.status
		s.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.WithError(err).Warn("monitor status write")
		}
	}
}

func (s *Server) handleFrame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size := 0
		if q := r.URL.Query().Get("size"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n < 1 || n > maxThumb {
				http.Error(w, "size must be between 1 and 2048", http.StatusBadRequest)
				return
			}
			size = n
		}

		s.mu.RLock()
		frame := s.frame
		s.mu.RUnlock()
		if frame == nil {
			http.Error(w, "no frame painted yet", http.StatusNotFound)
			return
		}

		var out image.Image = frame
		if size > 0 {
			// nearest neighbour keeps cell edges sharp
			out = imaging.Resize(frame, size, size, imaging.NearestNeighbor)
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, out); err != nil {
			log.WithError(err).Warn("monitor frame write")
		}
	}
}

// ListenAndServe runs until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	log.WithField("addr", addr).Info("monitor listening")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
