package eventsub

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the session counters. Pass one to Connect via WithMetrics to
// instrument a session; without it the session keeps no counters.
type Metrics struct {
	EventsReceived prometheus.Counter
	EventsDropped  prometheus.Counter
	DecodeFailures prometheus.Counter
	Reconnects     prometheus.Counter
}

// NewMetrics builds the counter set and registers it with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twitch",
			Subsystem: "eventsub",
			Name:      "events_received_total",
			Help:      "Domain events delivered to the session channel.",
		}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twitch",
			Subsystem: "eventsub",
			Name:      "events_dropped_total",
			Help:      "Domain events dropped because the consumer fell behind.",
		}),
		DecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twitch",
			Subsystem: "eventsub",
			Name:      "decode_failures_total",
			Help:      "Text frames dropped because they did not decode.",
		}),
		Reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twitch",
			Subsystem: "eventsub",
			Name:      "reconnects_total",
			Help:      "Successful session migrations to a new endpoint.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.EventsReceived, m.EventsDropped, m.DecodeFailures, m.Reconnects)
	}
	return m
}

// The nil-safe increment helpers let the session count unconditionally.

func (m *Metrics) received() {
	if m != nil {
		m.EventsReceived.Inc()
	}
}

func (m *Metrics) dropped() {
	if m != nil {
		m.EventsDropped.Inc()
	}
}

func (m *Metrics) decodeFailure() {
	if m != nil {
		m.DecodeFailures.Inc()
	}
}

func (m *Metrics) reconnected() {
	if m != nil {
		m.Reconnects.Inc()
	}
}
