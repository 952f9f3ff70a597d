// Package prom exports a Prometheus-backed observer for ctxtree.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// Metrics implements ctxtree.Observer on top of Prometheus
// collectors. All methods are safe for concurrent use.
type Metrics struct {
	nodesCreated   prometheus.Counter
	nodesCanceled  prometheus.Counter
	childrenLinked prometheus.Counter
	liveNodes      prometheus.Gauge
}

var _ ctxtree.Observer = (*Metrics)(nil)

// New builds the collectors and registers them with reg. A nil reg
// skips registration, which is handy for tests that only read the
// collectors directly.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "nodes_created_total",
			Help:      "Tree nodes created, including roots.",
		}),
		nodesCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "nodes_canceled_total",
			Help:      "Tree nodes transitioned to canceled.",
		}),
		childrenLinked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "children_attached_total",
			Help:      "Child registrations into a parent's list.",
		}),
		liveNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ctxtree",
			Name:      "live_nodes",
			Help:      "Nodes created and not yet canceled.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.nodesCreated, m.nodesCanceled, m.childrenLinked, m.liveNodes)
	}
	return m
}

// NodeCreated records a node entering the tree.
func (m *Metrics) NodeCreated(_ ctxtree.Context) {
	m.nodesCreated.Inc()
	m.liveNodes.Inc()
}

// ChildAttached records a parent/child registration.
func (m *Metrics) ChildAttached(_, _ ctxtree.Context) {
	m.childrenLinked.Inc()
}

// NodeCanceled records a node's transition to canceled.
func (m *Metrics) NodeCanceled(_ ctxtree.Context, _ error) {
	m.nodesCanceled.Inc()
	m.liveNodes.Dec()
}
