package admin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clientforge_admin_mutations_total",
	Help: "Admin mutations by action and result.",
}, []string{"action", "result"})

func observeMutation(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	mutationsTotal.WithLabelValues(action, result).Inc()
}
