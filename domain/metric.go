package domain

// Metric is a single named figure from an analysis, in display order.
type Metric struct {
	Key   string
	Value float64
}
