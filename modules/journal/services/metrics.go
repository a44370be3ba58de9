package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultImported = "imported"
	resultDryRun   = "dry_run"
	resultNotFound = "not_found"
	resultFailed   = "failed"
)

type importMetrics struct {
	journalsTotal     *prometheus.CounterVec
	createdTotal      *prometheus.CounterVec
	translationsTotal *prometheus.CounterVec
	duration          prometheus.Histogram
}

var metricsSingleton = sync.OnceValue(func() *importMetrics {
	return &importMetrics{
		journalsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ojs_import",
			Name:      "journals_total",
			Help:      "Journal import attempts by result.",
		}, []string{"result"}),
		createdTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ojs_import",
			Name:      "created_total",
			Help:      "Shared entities created on demand (publishers, langs).",
		}, []string{"entity"}),
		translationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ojs_import",
			Name:      "translations_total",
			Help:      "Translation rows written.",
		}, []string{"entity"}),
		duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ojs_import",
			Name:      "journal_duration_seconds",
			Help:      "Time spent importing one journal.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
})

func getMetrics() *importMetrics {
	return metricsSingleton()
}

func (m *importMetrics) observeFlush(stats FlushStats) {
	m.createdTotal.WithLabelValues("publisher").Add(float64(stats.Publishers))
	m.createdTotal.WithLabelValues("lang").Add(float64(stats.Langs))
	m.translationsTotal.WithLabelValues("journal").Add(float64(stats.JournalTranslations))
	m.translationsTotal.WithLabelValues("publisher").Add(float64(stats.PublisherTranslations))
}
