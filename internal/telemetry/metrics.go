package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cellportal"

// Metrics holds the bulk download collectors. A nil *Metrics records nothing.
type Metrics struct {
	signedURLs         *prometheus.CounterVec
	federatedFiles     *prometheus.CounterVec
	retries            *prometheus.CounterVec
	quotaCharged       prometheus.Counter
	quotaRejected      prometheus.Counter
	curlConfigs        prometheus.Counter
	curlConfigFiles    *prometheus.CounterVec
	curlConfigDuration prometheus.Histogram
	authCodes          *prometheus.CounterVec
	reportedErrors     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signedURLs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signed_urls_total",
			Help:      "Signed URL attempts by outcome.",
		}, []string{"outcome"}),
		federatedFiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "federated_files_total",
			Help:      "Federated file resolutions by outcome.",
		}, []string{"outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_retries_total",
			Help:      "Retried backend calls.",
		}, []string{"operation"}),
		quotaCharged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_quota_charged_bytes_total",
			Help:      "Bytes charged against user download quotas.",
		}),
		quotaRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_quota_rejections_total",
			Help:      "Requests rejected for exceeding the download quota.",
		}),
		curlConfigs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "curl_configs_total",
			Help:      "Curl configs generated.",
		}),
		curlConfigFiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "curl_config_files_total",
			Help:      "Files included in generated curl configs.",
		}, []string{"file_type"}),
		curlConfigDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "curl_config_duration_seconds",
			Help:      "Time spent composing a curl config.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		authCodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_codes_total",
			Help:      "Auth code lifecycle events.",
		}, []string{"event"}),
		reportedErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reported_errors_total",
			Help:      "Recovered errors forwarded to the error reporter.",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.signedURLs, m.federatedFiles, m.retries, m.quotaCharged, m.quotaRejected,
		m.curlConfigs, m.curlConfigFiles, m.curlConfigDuration, m.authCodes, m.reportedErrors,
	)
	return m
}

func (m *Metrics) SignedURL(outcome string) {
	if m == nil {
		return
	}
	m.signedURLs.WithLabelValues(outcome).Inc()
}

func (m *Metrics) FederatedFile(outcome string) {
	if m == nil {
		return
	}
	m.federatedFiles.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Retry(operation string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(operation).Inc()
}

func (m *Metrics) QuotaCharged(bytes int64) {
	if m == nil {
		return
	}
	m.quotaCharged.Add(float64(bytes))
}

func (m *Metrics) QuotaRejected() {
	if m == nil {
		return
	}
	m.quotaRejected.Inc()
}

// CurlConfigGenerated records one composed config with its per-type file
// counts.
func (m *Metrics) CurlConfigGenerated(fileTypes map[string]int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.curlConfigs.Inc()
	for fileType, n := range fileTypes {
		m.curlConfigFiles.WithLabelValues(fileType).Add(float64(n))
	}
	m.curlConfigDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) AuthCode(event string) {
	if m == nil {
		return
	}
	m.authCodes.WithLabelValues(event).Inc()
}

func (m *Metrics) ReportedError(operation string) {
	if m == nil {
		return
	}
	m.reportedErrors.WithLabelValues(operation).Inc()
}
