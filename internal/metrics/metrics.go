package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the relay pipeline
var (
	EventsReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_received_total",
			Help: "Inbound events by classified kind",
		},
		[]string{"kind"},
	)

	EventsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_dropped_total",
			Help: "Events dropped before dispatch, by reason",
		},
		[]string{"reason"},
	)

	DispatchSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_dispatch_sent_total",
			Help: "Successful outbound sends by mode",
		},
		[]string{"mode"},
	)

	DispatchFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_dispatch_failed_total",
			Help: "Failed outbound sends by mode",
		},
		[]string{"mode"},
	)

	ProfileLookupFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_profile_lookup_failed_total",
			Help: "Display-name lookups that fell back to the placeholder",
		},
	)
)

// Register registers all relay metrics
func Register() {
	prometheus.MustRegister(EventsReceivedTotal)
	prometheus.MustRegister(EventsDroppedTotal)
	prometheus.MustRegister(DispatchSentTotal)
	prometheus.MustRegister(DispatchFailedTotal)
	prometheus.MustRegister(ProfileLookupFailedTotal)
}
