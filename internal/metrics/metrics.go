package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "template_render_duration_seconds",
			Help:    "Duration of template rendering in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	ImagesStoredBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storage_images_bytes",
			Help: "Bytes of stored images per client",
		},
		[]string{"client_id"},
	)
)

// ObserveRender records one render of the given mode (site, section, static, full, preview).
func ObserveRender(mode string, start time.Time) {
	RenderDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// Middleware instruments each request with a counter and a duration histogram.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
