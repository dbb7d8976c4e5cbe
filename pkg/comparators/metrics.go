package comparators

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "solo"
	metricsSubsystem = "comparator"
	faultsName       = "field_faults_total"
)

// NewFaultCounter builds an unregistered counter of extraction faults
func NewFaultCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      faultsName,
		Help:      "Number of comparisons where a sort field could not be extracted from a record",
	}, []string{"field"})
}

func registerFaultCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	faults := NewFaultCounter()
	if err := reg.Register(faults); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		// the registry rejected the counter: faults are still counted, but not exported
	}
	return faults
}

// FaultCount sums the extraction faults gathered from g
func FaultCount(g prometheus.Gatherer) (float64, error) {
	families, err := g.Gather()
	if err != nil {
		return 0, errors.Wrap(err, "gathering metrics")
	}
	fqName := prometheus.BuildFQName(metricsNamespace, metricsSubsystem, faultsName)
	var total float64
	for _, family := range families {
		if family.GetName() != fqName {
			continue
		}
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
