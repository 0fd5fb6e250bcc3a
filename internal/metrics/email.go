package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Email delivery metrics. Defined in a standalone package to avoid import
// cycles between the email dispatcher and HTTP packages.

var (
	EmailSendsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "email_sends_total",
		Help: "Envíos de email por template, modo y resultado",
	}, []string{"template", "mode", "result"}) // mode: smtp|test, result: ok|error

	EmailSendDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "email_send_duration_seconds",
		Help:    "Duración del envío de email (render + transporte)",
		Buckets: prometheus.DefBuckets,
	}, []string{"template"})
)

// RegisterEmail registers the email metrics on the given registry (or default if nil).
func RegisterEmail(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{EmailSendsTotal, EmailSendDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
