// Package metrics defines the Prometheus collectors exported on /metrics.
//
// All recording methods are safe to call on a nil *Metrics, which records
// nothing; tests and tools that do not care about metrics pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymparty"

// Metrics holds every collector of the service.
type Metrics struct {
	partiesCreated   prometheus.Counter
	partiesCancelled prometheus.Counter
	joins            *prometheus.CounterVec
	checkIns         prometheus.Counter
	ledgerWrites     *prometheus.CounterVec
	soloCheckIns     prometheus.Counter
	subscribers      prometheus.Gauge
	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		partiesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parties_created_total",
			Help:      "Parties created.",
		}),
		partiesCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parties_cancelled_total",
			Help:      "Parties cancelled by their creator.",
		}),
		joins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "party_joins_total",
			Help:      "Join attempts by outcome.",
		}, []string{"outcome"}),
		checkIns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "party_checkins_total",
			Help:      "Party check-ins that passed the check-in gate.",
		}),
		ledgerWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_party_writes_total",
			Help:      "Per-member attendance writes of party check-ins by outcome.",
		}, []string{"outcome"}),
		soloCheckIns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solo_checkins_total",
			Help:      "Solo attendance check-ins recorded.",
		}),
		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_subscribers",
			Help:      "Open realtime party subscriptions.",
		}),
		rpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled by procedure and code.",
		}, []string{"procedure", "code"}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
}

// PartyCreated counts a created party.
func (m *Metrics) PartyCreated() {
	if m == nil {
		return
	}
	m.partiesCreated.Inc()
}

// PartyCancelled counts a cancelled party.
func (m *Metrics) PartyCancelled() {
	if m == nil {
		return
	}
	m.partiesCancelled.Inc()
}

// Join counts a join attempt with the given outcome label.
func (m *Metrics) Join(outcome string) {
	if m == nil {
		return
	}
	m.joins.WithLabelValues(outcome).Inc()
}

// CheckIn counts a party check-in and its ledger outcome.
func (m *Metrics) CheckIn(written, alreadyRecorded, failed int) {
	if m == nil {
		return
	}
	m.checkIns.Inc()
	m.ledgerWrites.WithLabelValues("written").Add(float64(written))
	m.ledgerWrites.WithLabelValues("already_recorded").Add(float64(alreadyRecorded))
	m.ledgerWrites.WithLabelValues("failed").Add(float64(failed))
}

// SoloCheckIn counts a solo attendance record.
func (m *Metrics) SoloCheckIn() {
	if m == nil {
		return
	}
	m.soloCheckIns.Inc()
}

// SubscriberOpened tracks a new realtime subscription.
func (m *Metrics) SubscriberOpened() {
	if m == nil {
		return
	}
	m.subscribers.Inc()
}

// SubscriberClosed tracks a closed realtime subscription.
func (m *Metrics) SubscriberClosed() {
	if m == nil {
		return
	}
	m.subscribers.Dec()
}

// ObserveRPC records one handled RPC.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
