package internal

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/expensivecode/folio/app/enum"
)

var (
	contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)
	themeChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_theme_changes_total",
			Help: "Display mode changes by resulting theme.",
		},
		[]string{"theme"},
	)
)

func init() {
	prometheus.MustRegister(contactSubmissions)
	prometheus.MustRegister(themeChanges)
}

// ObserveContact counts a finished contact submission.
func ObserveContact(outcome enum.Outcome) {
	contactSubmissions.WithLabelValues(outcome.String()).Inc()
}

// ObserveThemeChange counts a display mode change.
func ObserveThemeChange(th enum.Theme) {
	themeChanges.WithLabelValues(th.String()).Inc()
}
