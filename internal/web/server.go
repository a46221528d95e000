// Package web serves the showcase landing page over HTTP. Every browser view
// subscribes to its own frame stream backed by its own live panel.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/config"
	"github.com/rusenback/zephyria/internal/live"
	"github.com/rusenback/zephyria/internal/logger"
	"github.com/rusenback/zephyria/internal/metrics"
	"github.com/rusenback/zephyria/internal/model"
)

const (
	// defaultReadHeaderTimeout prevents Slowloris attacks.
	defaultReadHeaderTimeout = 10 * time.Second

	operationName = "zephyria-web"
)

// Option configures a Server
type Option func(*Server)

// WithInstruments shares a collector set, mainly for tests
func WithInstruments(in *Instruments) Option {
	return func(s *Server) { s.instruments = in }
}

// WithSeeder overrides how per-view seeds are chosen
func WithSeeder(f func() uint64) Option {
	return func(s *Server) { s.seed = f }
}

// WithInterval overrides every panel's tick interval
func WithInterval(d time.Duration) Option {
	return func(s *Server) { s.interval = d }
}

// Server is the HTTP showcase
type Server struct {
	cfg         *config.Config
	instruments *Instruments
	page        *template.Template
	svg         *template.Template
	seed        func() uint64
	interval    time.Duration

	httpSrv   *http.Server
	httpSrvMu sync.Mutex
}

// NewServer creates a server for cfg
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	svg, err := template.New("svg").Parse(svgTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse svg template: %w", err)
	}

	s := &Server{
		cfg:  cfg,
		page: page,
		svg:  svg,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.instruments == nil {
		s.instruments = NewInstruments()
	}
	if s.seed == nil {
		s.seed = func() uint64 {
			if cfg.Seed != 0 {
				return cfg.Seed
			}
			return uint64(time.Now().UnixNano())
		}
	}
	return s, nil
}

// Handler returns the traced HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/metrics", s.handleSnapshot)
	mux.HandleFunc("GET /api/metrics/stream", s.handleStream)
	mux.HandleFunc("GET /chart.svg", s.handleSVG)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.instruments.Handler())
	return otelhttp.NewHandler(mux, operationName)
}

// ListenAndServe starts the HTTP server on the configured address
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Web.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Web.Addr, err)
	}
	return s.Serve(ln)
}

// Serve starts the HTTP server on the given listener
func (s *Server) Serve(ln net.Listener) error {
	// Streams never go idle on their own; Shutdown cancels their base context
	base, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ReadTimeout:       s.cfg.Web.ReadTimeout,
		IdleTimeout:       s.cfg.Web.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)

	s.httpSrvMu.Lock()
	s.httpSrv = srv
	s.httpSrvMu.Unlock()

	logger.InfoContext(base, "web showcase listening", "addr", ln.Addr().String())
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown ends open streams and waits for their handlers to return
func (s *Server) Shutdown(ctx context.Context) error {
	s.httpSrvMu.Lock()
	srv := s.httpSrv
	s.httpSrvMu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// snapshot is the JSON body of /api/metrics
type snapshot struct {
	Preset  string          `json:"preset"`
	Label   string          `json:"label"`
	Samples []model.Sample  `json:"samples"`
	Summary metrics.Summary `json:"summary"`
	Frame   chart.Frame     `json:"frame"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	preset, panel, err := s.mount(r, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snapshot{
		Preset:  preset.Name,
		Label:   preset.Label,
		Samples: panel.Samples(),
		Summary: metrics.Summarize(panel.Samples()),
		Frame:   panel.Frame(),
	})
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	_, panel, err := s.mount(r, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := panel.Options()
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := s.svg.Execute(w, chartView{Frame: panel.Frame(), Width: opts.Width, Height: opts.Height}); err != nil {
		logger.Debug("render svg", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// mount builds and mounts a fresh panel for one request. The preset comes
// from ?preset=, the seed from ?seed= or the server seeder.
func (s *Server) mount(r *http.Request, surface live.Surface, opts ...live.Option) (config.Preset, *live.Panel, error) {
	preset, err := s.cfg.Lookup(s.presetName(r))
	if err != nil {
		return config.Preset{}, nil, err
	}

	seed := s.seed()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return config.Preset{}, nil, fmt.Errorf("%w: seed %q", errBadRequest, raw)
		}
	}

	if surface == nil {
		surface = live.SurfaceFunc(func(chart.Frame) error { return nil })
	}
	if s.interval > 0 {
		opts = append(opts, live.WithInterval(s.interval))
	}
	panel := live.NewPanel(metrics.NewSeeded(preset.Profile, seed), preset.Chart, surface, opts...)
	if err := panel.Mount(); err != nil {
		return config.Preset{}, nil, err
	}
	return preset, panel, nil
}

func (s *Server) presetName(r *http.Request) string {
	if name := r.URL.Query().Get("preset"); name != "" {
		return name
	}
	return s.cfg.Preset
}

var errBadRequest = errors.New("bad request")

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, config.ErrUnknownPreset):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}
