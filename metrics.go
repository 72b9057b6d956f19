package vecmath

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting mesh metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordValidate is called after each mesh validation.
	RecordValidate(duration time.Duration, err error)

	// RecordNormals is called after each ComputeNormals run.
	// vertices and triangles describe the mesh, err is nil if successful.
	RecordNormals(vertices, triangles int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordValidate(time.Duration, error)          {}
func (NoopMetricsCollector) RecordNormals(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use by several meshes.
type BasicMetricsCollector struct {
	ValidateCount      atomic.Int64
	ValidateErrors     atomic.Int64
	ValidateTotalNanos atomic.Int64
	NormalsCount       atomic.Int64
	NormalsErrors      atomic.Int64
	NormalsVertices    atomic.Int64
	NormalsTriangles   atomic.Int64
	NormalsTotalNanos  atomic.Int64
}

// RecordValidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidate(duration time.Duration, err error) {
	b.ValidateCount.Add(1)
	b.ValidateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ValidateErrors.Add(1)
	}
}

// RecordNormals implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNormals(vertices, triangles int, duration time.Duration, err error) {
	b.NormalsCount.Add(1)
	b.NormalsTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NormalsErrors.Add(1)
		return
	}
	b.NormalsVertices.Add(int64(vertices))
	b.NormalsTriangles.Add(int64(triangles))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ValidateCount:    b.ValidateCount.Load(),
		ValidateErrors:   b.ValidateErrors.Load(),
		ValidateAvgNanos: avg(b.ValidateTotalNanos.Load(), b.ValidateCount.Load()),
		NormalsCount:     b.NormalsCount.Load(),
		NormalsErrors:    b.NormalsErrors.Load(),
		NormalsVertices:  b.NormalsVertices.Load(),
		NormalsTriangles: b.NormalsTriangles.Load(),
		NormalsAvgNanos:  avg(b.NormalsTotalNanos.Load(), b.NormalsCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ValidateCount    int64
	ValidateErrors   int64
	ValidateAvgNanos int64
	NormalsCount     int64
	NormalsErrors    int64
	NormalsVertices  int64
	NormalsTriangles int64
	NormalsAvgNanos  int64
}
