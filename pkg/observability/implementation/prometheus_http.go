package implementation

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewMetricsMux(
	reg *prometheus.Registry,
	routes map[string]http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	for pattern, handler := range routes {
		mux.Handle(pattern, handler)
	}
	return mux
}

func StartMetricsServer(
	addr string,
	reg *prometheus.Registry,
	routes map[string]http.Handler,
) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: NewMetricsMux(reg, routes),
	}

	go func() { _ = srv.ListenAndServe() }()

	return srv
}
