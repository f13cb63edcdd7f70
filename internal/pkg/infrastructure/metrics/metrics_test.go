package metrics

import (
	"testing"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	is := is.New(t)

	m := New(prometheus.NewRegistry())
	m.Observe("create-environment", "ok")
	m.Observe("create-environment", "ok")
	m.Observe("create-environment", "conflict")

	is.Equal(2.0, testutil.ToFloat64(m.Operations.WithLabelValues("create-environment", "ok")))
	is.Equal(1.0, testutil.ToFloat64(m.Operations.WithLabelValues("create-environment", "conflict")))
}

func TestObserveOnNilIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe("anything", "ok")
}
