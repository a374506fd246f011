package records

import "testing"

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"19.99", 19.99},
		{"$19.99", 19.99},
		{"$1,234.50", 1234.5},
		{"12.5%", 12.5},
		{" 42 ", 42},
		{"-3.25", -3.25},
		{"", 0},
		{"N/A", 0},
		{"$", 0},
		{"12.3.4", 0},
	}
	for _, tt := range tests {
		if got := ParseCurrency(tt.raw); got != tt.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"7", 7},
		{"1,000", 1000},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
	}
	for _, tt := range tests {
		if got := ParseInteger(tt.raw); got != tt.want {
			t.Errorf("ParseInteger(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseBoolean(t *testing.T) {
	truthy := []string{"TRUE", "true", "True", "YES", "yes", "1", " true "}
	for _, raw := range truthy {
		if !ParseBoolean(raw) {
			t.Errorf("ParseBoolean(%q) = false, want true", raw)
		}
	}
	falsy := []string{"", "FALSE", "no", "0", "maybe"}
	for _, raw := range falsy {
		if ParseBoolean(raw) {
			t.Errorf("ParseBoolean(%q) = true, want false", raw)
		}
	}
}

func TestTaxPerUnit(t *testing.T) {
	tests := []struct {
		taxTotal float64
		qty      int
		want     float64
	}{
		{8.0, 4, 2.0},
		{8.0, 0, 0},
		{8.0, -1, 0},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := TaxPerUnit(tt.taxTotal, tt.qty); got != tt.want {
			t.Errorf("TaxPerUnit(%v, %d) = %v, want %v", tt.taxTotal, tt.qty, got, tt.want)
		}
	}
}
