// Package report formats computed metrics for text display. Presentation
// rules are keyed off the metric name: percentage and rate metrics carry a
// % suffix, ratios are printed unitless, everything else is currency.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"finconsult/domain"
)

// FormatValue renders a single metric value according to its key.
func FormatValue(key string, value float64) string {
	d := decimal.NewFromFloat(value)
	switch {
	case strings.Contains(key, "percentage") || strings.Contains(key, "rate"):
		return d.StringFixed(2) + "%"
	case strings.Contains(key, "ratio"):
		return d.String()
	default:
		return "$" + groupThousands(d.StringFixed(2))
	}
}

// Label turns a metric key into its display label ("monthly_payment" →
// "Monthly Payment").
func Label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Render produces a titled text block listing each metric on its own line.
func Render(title string, metrics []domain.Metric) string {
	var b strings.Builder
	b.WriteString("\n" + title + ":\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, m := range metrics {
		b.WriteString(Label(m.Key) + ": " + FormatValue(m.Key, m.Value) + "\n")
	}
	return b.String()
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
