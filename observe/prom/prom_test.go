package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

func TestMetricsTrackTreeLifecycle(t *testing.T) {
	t.Parallel()
	chk := require.New(t)

	reg := prometheus.NewRegistry()
	m := New(reg)

	r := ctxtree.Background(ctxtree.WithObserver(m))
	a, cancelA := ctxtree.WithCancel(r)
	_, _ = ctxtree.WithCancel(a)
	_, _ = ctxtree.WithCancel(r)

	chk.Equal(4.0, testutil.ToFloat64(m.nodesCreated))
	chk.Equal(3.0, testutil.ToFloat64(m.childrenLinked))
	chk.Equal(4.0, testutil.ToFloat64(m.liveNodes))

	cancelA() // cancels a and its one child

	chk.Equal(2.0, testutil.ToFloat64(m.nodesCanceled))
	chk.Equal(2.0, testutil.ToFloat64(m.liveNodes))
}

func TestNewRegistersCollectors(t *testing.T) {
	t.Parallel()
	chk := require.New(t)

	reg := prometheus.NewRegistry()
	New(reg)

	families, err := reg.Gather()
	chk.NoError(err)
	// Counters at zero are still exported; the gauge always is.
	chk.NotEmpty(families)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
