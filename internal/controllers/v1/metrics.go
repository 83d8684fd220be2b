package v1

import "github.com/prometheus/client_golang/prometheus"

// Recalculations counts ledger recalculations by the operation that caused them.
//
// It is registered with the other Prometheus metrics by the router.
var Recalculations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_recalculations_total",
		Help: "How many times the months of a budget were recalculated, partitioned by the operation that caused it.",
	},
	[]string{"operation"},
)
