package awards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awards_evaluations_total",
			Help: "Кол-во проверок наград",
		},
		[]string{"result"},
	)

	claimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awards_claims_total",
			Help: "Кол-во заявок на получение уровня",
		},
		[]string{"result"},
	)

	importedContactsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "awards_imported_contacts_total",
			Help: "Кол-во загруженных связей",
		},
	)
)
