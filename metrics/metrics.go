package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/seeding"
)

const namespace = "bracket_seeding"

// Metrics owns a private registry so independent instances never collide.
type Metrics struct {
	registry        *prometheus.Registry
	operations      *prometheus.CounterVec
	plans           *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Seeding operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Plan lifecycle events by stage type.",
		}, []string{"event", "stage_type"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.operations,
		m.plans,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func (m *Metrics) PlanCreated(stageType brackets.StageType) {
	m.plans.WithLabelValues("created", string(stageType)).Inc()
}

func (m *Metrics) PlanDeleted(stageType brackets.StageType) {
	m.plans.WithLabelValues("deleted", string(stageType)).Inc()
}

// Middleware records request latency labelled by the matched chi route.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}

// Outcome maps an operation error to a low-cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, seeding.ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, seeding.ErrSizeMismatch):
		return "size_mismatch"
	case errors.Is(err, seeding.ErrUnsupportedSize):
		return "unsupported_size"
	case errors.Is(err, seeding.ErrTiedScore):
		return "tied_score"
	case errors.Is(err, seeding.ErrUnknownOrdering):
		return "unknown_ordering"
	default:
		return "error"
	}
}
