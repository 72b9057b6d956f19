package vecmath

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	validate         bool
}

// Option configures a Mesh.
type Option func(*options)

// WithLogger configures structured logging for mesh operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics collector for mesh operations.
// Pass nil to disable metrics.
//
// Example:
//
//	metrics := &vecmath.BasicMetricsCollector{}
//	mesh := vecmath.NewMesh(vertices, indices, vecmath.WithMetricsCollector(metrics))
//	// ... compute normals ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.NormalsCount, stats.NormalsAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithValidation controls whether ComputeNormals validates the mesh first.
// Validation is on by default. Disabling it restores the unchecked
// behaviour of FlatVertexNormal.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		validate:         true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
