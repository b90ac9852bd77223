package domain

// LogEntry is one log record returned by the log-store search backend.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Host      string `json:"host"`
	Index     string `json:"index"`
}

// MetricPoint is one datapoint returned by the metrics-store backend.
type MetricPoint struct {
	Timestamp   string  `json:"timestamp"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Service     string  `json:"service"`
	Environment string  `json:"environment,omitempty"`
	Cluster     string  `json:"cluster,omitempty"`
}
