package vecmath_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m vecmath.BasicMetricsCollector

	assert.Equal(t, vecmath.BasicMetricsStats{}, m.GetStats())

	m.RecordValidate(2*time.Microsecond, nil)
	m.RecordValidate(4*time.Microsecond, errors.New("bad"))
	m.RecordNormals(100, 50, 10*time.Microsecond, nil)
	m.RecordNormals(100, 50, 30*time.Microsecond, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.ValidateCount)
	assert.Equal(t, int64(1), stats.ValidateErrors)
	assert.Equal(t, int64(3000), stats.ValidateAvgNanos)
	assert.Equal(t, int64(2), stats.NormalsCount)
	assert.Equal(t, int64(200), stats.NormalsVertices)
	assert.Equal(t, int64(100), stats.NormalsTriangles)
	assert.Equal(t, int64(20000), stats.NormalsAvgNanos)
}

func TestBasicMetricsCollectorConcurrent(t *testing.T) {
	var m vecmath.BasicMetricsCollector

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 1000 {
				m.RecordNormals(3, 1, time.Nanosecond, nil)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(8000), m.GetStats().NormalsCount)
	assert.Equal(t, int64(24000), m.GetStats().NormalsVertices)
}
