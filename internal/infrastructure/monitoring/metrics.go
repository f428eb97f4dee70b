package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	LoansAdmittedTotal   *prometheus.CounterVec
	CommissionTotal      prometheus.Counter
	PortfolioLoansByStat *prometheus.GaugeVec
}

var Business = BusinessMetrics{
	LoansAdmittedTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_tracker_loans_admitted_total",
			Help: "Total number of loans admitted, by status at creation.",
		},
		[]string{"status"},
	),
	CommissionTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_tracker_commission_amount_total",
			Help: "Sum of commission amounts computed for funded loans.",
		},
	),
	PortfolioLoansByStat: promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "loan_tracker_portfolio_loans",
			Help: "Current number of stored loans per status.",
		},
		[]string{"status"},
	),
}

func RecordLoanAdmitted(status string) {
	Business.LoansAdmittedTotal.WithLabelValues(status).Inc()
}

func RecordCommission(amount float64) {
	Business.CommissionTotal.Add(amount)
}

func SetPortfolioCount(status string, count int64) {
	Business.PortfolioLoansByStat.WithLabelValues(status).Set(float64(count))
}
