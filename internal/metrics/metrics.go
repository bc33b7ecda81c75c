package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zerocycle", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zerocycle", Name: "handler_errors_total", Help: "Handler errors",
	})
	NotificationsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zerocycle", Name: "notifications_generated_total", Help: "Pickup notification messages generated",
	})
	WatchSubscriptions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "zerocycle", Name: "watch_subscriptions", Help: "Open live-subscription streams",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HandlerErrors, NotificationsGenerated, WatchSubscriptions)
}

func Handler() http.Handler { return promhttp.Handler() }
