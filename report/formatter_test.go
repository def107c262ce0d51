package report

import (
	"strings"
	"testing"

	"finconsult/domain"
)

func TestFormatValue_Percentage(t *testing.T) {

	if got := FormatValue("roi_percentage", 50); got != "50.00%" {
		t.Errorf("expected 50.00%%, got %s", got)
	}
	if got := FormatValue("growth_percentage", 303.87); got != "303.87%" {
		t.Errorf("expected 303.87%%, got %s", got)
	}
}

func TestFormatValue_Ratio(t *testing.T) {

	if got := FormatValue("current_ratio", 1.25); got != "1.25" {
		t.Errorf("expected 1.25, got %s", got)
	}
	if got := FormatValue("profit_ratio", 0.3); got != "0.3" {
		t.Errorf("expected 0.3, got %s", got)
	}
}

func TestFormatValue_Currency(t *testing.T) {

	if got := FormatValue("monthly_payment", 1266.71); got != "$1,266.71" {
		t.Errorf("expected $1,266.71, got %s", got)
	}
	if got := FormatValue("total_payment", 456016.78); got != "$456,016.78" {
		t.Errorf("expected $456,016.78, got %s", got)
	}
	if got := FormatValue("profit", -100); got != "$-100.00" {
		t.Errorf("expected $-100.00, got %s", got)
	}
}

func TestLabel(t *testing.T) {

	if got := Label("monthly_payment"); got != "Monthly Payment" {
		t.Errorf("expected Monthly Payment, got %s", got)
	}
	if got := Label("return_on_assets_percentage"); got != "Return On Assets Percentage" {
		t.Errorf("unexpected label %s", got)
	}
}

func TestRender(t *testing.T) {

	out := Render("Loan Results", []domain.Metric{
		{Key: "monthly_payment", Value: 1266.71},
		{Key: "roi_percentage", Value: 50},
	})

	if !strings.Contains(out, "Loan Results:") {
		t.Errorf("expected title in output: %q", out)
	}
	if !strings.Contains(out, "Monthly Payment: $1,266.71") {
		t.Errorf("expected formatted payment line: %q", out)
	}
	if !strings.Contains(out, "Roi Percentage: 50.00%") {
		t.Errorf("expected formatted roi line: %q", out)
	}
}
