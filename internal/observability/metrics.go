package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ridepool"

var (
	RideRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ride_requests_created_total",
		Help:      "Total ride requests created",
	})

	RideRequestsResponded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ride_requests_responded_total",
		Help:      "Total ride request responses by outcome",
	}, []string{"response"})

	RideRequestsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ride_requests_cancelled_total",
		Help:      "Total ride requests cancelled",
	})

	CascadeRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_rejections_total",
		Help:      "Total pending requests auto-rejected after an accept",
	})

	NotificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total notifications persisted",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total notification writes that failed and were dropped",
	})

	SeatAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seat_adjustments_total",
		Help:      "Total seat ledger adjustments by direction",
	}, []string{"direction"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
