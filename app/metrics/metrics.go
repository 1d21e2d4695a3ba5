package metrics

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SourceFetches counts feed fetch attempts by source and result.
	SourceFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_source_fetch_total",
			Help: "Feed fetch attempts by source and result.",
		},
		[]string{"source", "result"},
	)

	// EventsSkipped counts event records quarantined at ingestion.
	EventsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_events_skipped_total",
			Help: "Event records skipped as malformed during normalization.",
		},
	)

	// PageRenders counts page renders by page name.
	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_page_render_total",
			Help: "Server-side page renders by page.",
		},
		[]string{"page"},
	)
)

func init() {
	prometheus.MustRegister(SourceFetches, EventsSkipped, PageRenders)
}

// Handler exposes the Prometheus registry as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
