// Package metrics exports the race standings as prometheus gauges.
//
// The recorder is fed by a race.Store observer on the board's update loop;
// scrapes only ever read the gauges, never the store.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"salesrace/internal/race"
)

const namespace = "salesrace"

// ShutdownTimeout bounds the drain of in-flight scrapes.
const ShutdownTimeout = 5 * time.Second

// Recorder holds the race collectors on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	target      prometheus.Gauge
	competitors prometheus.Gauge
	winner      prometheus.Gauge
	value       *prometheus.GaugeVec
	progress    *prometheus.GaugeVec
	mutations   *prometheus.CounterVec
}

// NewRecorder registers the race collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		target: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "target_value",
			Help:      "Current finish line.",
		}),
		competitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "competitors",
			Help:      "Number of competitors on the track.",
		}),
		winner: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "winner_id",
			Help:      "Id of the current winner, 0 when there is none or it left the track.",
		}),
		value: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "competitor_value",
			Help:      "Accumulated sales per competitor.",
		}, []string{"id", "name"}),
		progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "competitor_progress_percent",
			Help:      "Sales as a percentage of the target, uncapped.",
		}, []string{"id", "name"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Applied race mutations by operation.",
		}, []string{"op"}),
	}
	r.registry.MustRegister(r.target, r.competitors, r.winner, r.value, r.progress, r.mutations)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe is a race.Observer: it counts op and mirrors s into the gauges.
func (r *Recorder) Observe(op race.Op, s race.State) {
	r.mutations.WithLabelValues(string(op)).Inc()
	r.Set(s)
}

// Set mirrors s into the gauges. Per-competitor series are rebuilt so that
// removed or renamed competitors disappear.
func (r *Recorder) Set(s race.State) {
	r.target.Set(s.Target)
	r.competitors.Set(float64(len(s.Competitors)))
	if s.Winner != nil {
		r.winner.Set(float64(s.Winner.ID))
	} else {
		r.winner.Set(0)
	}

	r.value.Reset()
	r.progress.Reset()
	for _, c := range s.Competitors {
		id := strconv.Itoa(c.ID)
		r.value.WithLabelValues(id, c.Name).Set(c.Value)
		r.progress.WithLabelValues(id, c.Name).Set(race.Progress(c, s.Target))
	}
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Server serves /metrics until its context ends.
type Server struct {
	recorder *Recorder
	logger   *zap.Logger
	http     *http.Server
}

// NewServer wires the recorder into an HTTP server.
func NewServer(rec *Recorder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	return &Server{
		recorder: rec,
		logger:   logger,
		http: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen metrics %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs on ln until ctx is done, then shuts down within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	s.logger.Info("metrics listening", zap.String("addr", ln.Addr().String()))
	go func() {
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		err := s.http.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		s.logger.Info("metrics stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	}
}
