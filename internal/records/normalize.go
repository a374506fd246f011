package records

import (
	"strconv"
	"strings"
)

// The normalizers are total over arbitrary text: sheet cells are
// operator-edited and must never break the read path. Malformed input
// yields the zero value, never an error.

// ParseCurrency strips currency symbols, thousands separators and percent
// signs, then parses the remainder as a float. Returns 0.0 on failure.
func ParseCurrency(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0.0
	}
	cleaned = strings.NewReplacer("$", "", ",", "", "%", "").Replace(cleaned)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return value
}

// ParseInteger strips thousands separators and parses the remainder as an
// integer. Returns 0 on failure.
func ParseInteger(raw string) int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}

// ParseBoolean reports whether the trimmed, uppercased value is one of the
// truthy tokens the sheet's checkboxes produce. Absence means false.
func ParseBoolean(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRUE", "YES", "1":
		return true
	}
	return false
}

// TaxPerUnit derives the per-unit tax from a total. A zero or negative
// quantity yields 0 rather than a division error.
func TaxPerUnit(taxTotal float64, qtyPurchased int) float64 {
	if taxTotal == 0 || qtyPurchased <= 0 {
		return 0.0
	}
	return taxTotal / float64(qtyPurchased)
}
