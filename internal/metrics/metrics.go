package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler builds the admin mux: the prometheus registry on /metrics, a
// liveness probe on /healthz, and — when a readiness check is supplied — a
// dependency check on /health. It lives on a private listener so the public
// route table keeps its strict not-found behavior.
func Handler(reg *prometheus.Registry, ready func(ctx context.Context) error) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if ready != nil {
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			w.Header().Set("Content-Type", "application/json")
			if err := ready(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unhealthy"}`))
				return
			}
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		})
	}

	return mux
}

// Serve blocks serving the admin handler on addr. An empty addr disables the
// listener and returns immediately.
func Serve(addr string, reg *prometheus.Registry, ready func(ctx context.Context) error) error {
	if addr == "" {
		return nil
	}
	return http.ListenAndServe(addr, Handler(reg, ready))
}
