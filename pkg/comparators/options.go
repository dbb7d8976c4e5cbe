package comparators

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option is a functor to build comparators
type Option func(*Comparator)

// WithLogger sets the sink for extraction faults. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Comparator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFaultCounter counts extraction faults, labeled by field name
func WithFaultCounter(faults *prometheus.CounterVec) Option {
	return func(c *Comparator) {
		c.faults = faults
	}
}

// WithRegisterer counts extraction faults on a counter registered with reg.
//
// If the counter is already registered, the existing collector is reused.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Comparator) {
		if reg == nil {
			return
		}
		c.faults = registerFaultCounter(reg)
	}
}
