package comparators

import (
	"cmp"

	"github.com/oneconcern/solo/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Comparator orders records by descending numeric field values.
//
// A Comparator holds no mutable state and may be shared by concurrent sorts.
// The zero value is usable and discards diagnostics.
type Comparator struct {
	logger *zap.Logger
	faults *prometheus.CounterVec
}

// New builds a Comparator
func New(opts ...Option) Comparator {
	c := Comparator{
		logger: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(&c)
	}
	return c
}

// Compare two records by the descending value of a field.
//
// The result is GreaterThan when a holds the smaller value, LessThan when a holds the larger one.
// When the field cannot be extracted from either record, the fault is reported and the result is EqualTo.
func (c Comparator) Compare(a, b model.Record, field FieldSpec) Comparison {
	va, err := field.extract(a)
	if err != nil {
		c.fault(field, err)
		return EqualTo
	}
	vb, err := field.extract(b)
	if err != nil {
		c.fault(field, err)
		return EqualTo
	}
	return Comparison(cmp.Compare(vb, va))
}

// CreatedDescending orders articles from the most recently created
func (c Comparator) CreatedDescending(a, b model.Record) Comparison {
	return c.Compare(a, b, Created())
}

// UpdatedDescending orders articles from the most recently updated
func (c Comparator) UpdatedDescending(a, b model.Record) Comparison {
	return c.Compare(a, b, Updated())
}

// ReferenceCountDescending orders tags from the most referenced
func (c Comparator) ReferenceCountDescending(a, b model.Record) Comparison {
	return c.Compare(a, b, ReferenceCount())
}

func (c Comparator) fault(field FieldSpec, err error) {
	if c.logger != nil {
		c.logger.Error("compares "+field.Description+" failed",
			zap.String("field", field.Name),
			zap.Stringer("kind", field.Kind),
			zap.Error(err),
		)
	}
	if c.faults != nil {
		c.faults.WithLabelValues(field.Name).Inc()
	}
}
