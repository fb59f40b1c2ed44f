package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PartyCreated()
	m.PartyCreated()
	m.Join("admitted")
	m.Join("full")
	m.Join("admitted")
	m.CheckIn(4, 1, 0)
	m.SubscriberOpened()
	m.SubscriberOpened()
	m.SubscriberClosed()
	m.ObserveRPC("/gymparty.v1.PartyService/JoinParty", "ok", 10*time.Millisecond)

	if got := testutil.ToFloat64(m.partiesCreated); got != 2 {
		t.Errorf("parties created: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.joins.WithLabelValues("admitted")); got != 2 {
		t.Errorf("admitted joins: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ledgerWrites.WithLabelValues("written")); got != 4 {
		t.Errorf("ledger writes: got %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.subscribers); got != 1 {
		t.Errorf("subscribers: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rpcRequests.WithLabelValues("/gymparty.v1.PartyService/JoinParty", "ok")); got != 1 {
		t.Errorf("rpc requests: got %v, want 1", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.PartyCreated()
	m.Join("admitted")
	m.CheckIn(1, 0, 0)
	m.SubscriberOpened()
	m.ObserveRPC("x", "ok", time.Second)
}
