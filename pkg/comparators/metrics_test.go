package comparators

import (
	"testing"

	"github.com/oneconcern/solo/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultCounter(t *testing.T) {
	faults := NewFaultCounter()
	c := New(WithFaultCounter(faults))

	_ = c.CreatedDescending(article(nil, nil), article(int64(1), nil))
	_ = c.CreatedDescending(article(int64(1), nil), article(int64(2), nil))
	_ = c.ReferenceCountDescending(tag("x"), tag(1))
	_ = c.ReferenceCountDescending(tag(2), tag(nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(faults.WithLabelValues(model.ArticleCreated)))
	assert.Equal(t, float64(0), testutil.ToFloat64(faults.WithLabelValues(model.ArticleUpdated)))
	assert.Equal(t, float64(2), testutil.ToFloat64(faults.WithLabelValues(model.TagReferenceCount)))
}

func TestWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(WithRegisterer(reg))
	second := New(WithRegisterer(reg)) // reuses the registered counter

	total, err := FaultCount(reg)
	require.NoError(t, err)
	assert.Zero(t, total)

	_ = first.UpdatedDescending(article(nil, nil), article(nil, int64(1)))
	_ = second.UpdatedDescending(article(nil, int64(1)), article(nil, "soon"))
	_ = second.CreatedDescending(article(nil, nil), article(nil, nil))

	total, err = FaultCount(reg)
	require.NoError(t, err)
	assert.Equal(t, float64(3), total)
	series, err := testutil.GatherAndCount(reg, "solo_comparator_field_faults_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestWithNilRegisterer(t *testing.T) {
	c := New(WithRegisterer(nil), WithLogger(nil))
	assert.NotPanics(t, func() {
		assert.Equal(t, EqualTo, c.CreatedDescending(article(nil, nil), article(nil, nil)))
	})
}
