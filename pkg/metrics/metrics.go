package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blogbuster"

// Collectors groups the counters the site reports. Each instance owns its own
// registry so tests can build as many as they need.
type Collectors struct {
	Registry        *prometheus.Registry
	PageRenders     *prometheus.CounterVec
	WidgetFragments *prometheus.CounterVec
	ViewIncrements  prometheus.Counter
	JobRuns         *prometheus.CounterVec
	JobDuration     *prometheus.HistogramVec
}

func NewCollectors() *Collectors {
	c := &Collectors{
		Registry: prometheus.NewRegistry(),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Page context bundles served, by page and status.",
		}, []string{"page", "status"}),
		WidgetFragments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "widget_fragments_total",
			Help:      "Sidebar widget fragments assembled, by widget type and outcome.",
		}, []string{"widget_type", "outcome"}),
		ViewIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_view_increments_total",
			Help:      "Post detail view counter writes.",
		}),
		JobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduled_job_runs_total",
			Help:      "Scheduled job executions, by job and result.",
		}, []string{"job", "result"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scheduled_job_duration_seconds",
			Help:      "Scheduled job run time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"}),
	}

	c.Registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		c.PageRenders,
		c.WidgetFragments,
		c.ViewIncrements,
		c.JobRuns,
		c.JobDuration,
	)

	return c
}

func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{Registry: c.Registry})
}

func (c *Collectors) PageServed(page string, status int) {
	if c == nil {
		return
	}

	c.PageRenders.WithLabelValues(page, http.StatusText(status)).Inc()
}

func (c *Collectors) Fragment(widgetType, outcome string) {
	if c == nil {
		return
	}

	c.WidgetFragments.WithLabelValues(widgetType, outcome).Inc()
}

func (c *Collectors) ViewCounted() {
	if c == nil {
		return
	}

	c.ViewIncrements.Inc()
}

// ObserveJob has the scheduler.Observer shape.
func (c *Collectors) ObserveJob(name string, elapsed time.Duration, err error) {
	if c == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	c.JobRuns.WithLabelValues(name, result).Inc()
	c.JobDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
