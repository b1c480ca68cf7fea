package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(src source) MetricsConfig {
	return MetricsConfig{
		Enabled:      src.flag(envMetricsOn, true),
		Port:         src.str(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: src.str(envOtelEndpoint, ""),
		ServiceName:  src.str(envOtelService, defaultServiceName),
		OtlpInsecure: src.flag(envOtelInsecure, true),
	}
}
