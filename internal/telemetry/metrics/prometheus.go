package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on the metrics listener. It carries
// the runtime collectors, a constant version gauge and the given extra collectors,
// e.g. the postgres pool stats.
func SetupPrometheus(versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	versionGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "training_backend_version_info",
		Help:        "Always 1, labeled with the deployed version.",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	versionGauge.Set(1)

	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versionGauge,
	)
	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}
