package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	LoginSucceeded     = "success"
	LoginUnknownEmail  = "unknown_email"
	LoginWrongPassword = "wrong_password"
	LoginInvalid       = "invalid"
	LoginError         = "error"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 7),
		},
		[]string{"method", "endpoint"},
	)

	// Business logic metrics
	authLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	authTokenReissuesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_reissues_total",
			Help: "Total number of tokens reissued to authenticated users",
		},
	)

	// Dependency metrics
	storeDialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_dials_total",
			Help: "Total number of database dial attempts by result",
		},
		[]string{"result"},
	)

	dependencyHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_health",
			Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
		},
		[]string{"dependency"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration, responseSize int64) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
	httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
}

// RecordLogin counts a login attempt with one of the Login* results.
func RecordLogin(result string) {
	authLoginsTotal.WithLabelValues(result).Inc()
}

func RecordTokenReissue() {
	authTokenReissuesTotal.Inc()
}

// RecordDial counts a gateway dial attempt. It matches store.Gateway.OnDial.
func RecordDial(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	storeDialsTotal.WithLabelValues(result).Inc()
}

// SetDependencyHealth sets the health status of a dependency
func SetDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	dependencyHealth.WithLabelValues(dependency).Set(value)
}
