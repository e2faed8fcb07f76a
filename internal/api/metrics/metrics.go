// Package metrics defines and registers all custom Prometheus metrics for the
// vet marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vetmarket"

// AppointmentsBookedTotal counts successfully created appointments.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)

// EmergencyLookupsTotal counts emergency vet lookups.
// Label:
//   - result: "found" when at least one vet matched, "none" otherwise
var EmergencyLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emergency_lookups_total",
		Help:      "Total number of emergency vet lookups, labelled by result (found/none).",
	},
	[]string{"result"},
)

// ServiceSearchesTotal counts free-text service searches.
var ServiceSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_searches_total",
		Help:      "Total number of service catalog searches.",
	},
)

// OTPDeliveriesTotal counts password-reset code deliveries handed to the
// dispatcher.
// Label:
//   - result: "ok" or "error"
var OTPDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_deliveries_total",
		Help:      "Total number of password-reset code deliveries, labelled by result.",
	},
	[]string{"result"},
)
