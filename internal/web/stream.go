package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/live"
	"github.com/rusenback/zephyria/internal/logger"
)

const frameEvent = "frame"

// sseSurface presents frames as Server-Sent Events on one response
type sseSurface struct {
	w       http.ResponseWriter
	flusher http.Flusher
	seq     int
}

func (s *sseSurface) Present(f chart.Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	s.seq++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.seq, frameEvent, data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	s.flusher.Flush()
	return nil
}

// handleStream owns one live panel for the lifetime of the request.
// The panel is discarded when the client goes away or the server shuts down.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	name := s.presetName(r)
	if _, err := s.cfg.Lookup(name); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	surface := &sseSurface{w: w, flusher: flusher}
	preset, panel, err := s.mount(r, surface, live.WithObserver(s.instruments.Observer(name)))
	if err != nil {
		if surface.seq == 0 {
			writeError(w, err)
			return
		}
		logger.DebugContext(r.Context(), "stream mount failed", "preset", name, "error", err)
		return
	}

	id := uuid.NewString()
	log := logger.With("stream", id, "preset", preset.Name)
	s.instruments.streamOpened()
	defer s.instruments.streamClosed()
	log.Debug("stream opened", "interval", panel.Interval())

	if err := panel.Run(r.Context()); err != nil {
		logger.Warn("stream ended", "stream", id, "preset", preset.Name, "error", err)
		return
	}
	log.Debug("stream closed")
}
