package metrics

// Option configures a Metrics instance
type Option func(*Metrics)

// WithNamespace sets the metric namespace
func WithNamespace(namespace string) Option {
	return func(m *Metrics) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem used by the HTTP collectors
func WithSubsystem(subsystem string) Option {
	return func(m *Metrics) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets overrides the latency buckets
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Metrics) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}
