package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dateFormat = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ValidationError carries a user-readable rejection of one form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validateDate(field, raw string) error {
	if !dateFormat.MatchString(strings.TrimSpace(raw)) {
		return &ValidationError{Field: field, Message: "Invalid date format. Please use MM/DD/YYYY (e.g., 01/15/2025)"}
	}
	return nil
}

func validatePositiveInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a positive whole number", field)}
	}
	return n, nil
}

func validateNonNegativeInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a whole number of zero or more", field)}
	}
	return n, nil
}

func validateMoney(field, raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "$", ""), ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a valid non-negative number", field)}
	}
	return v, nil
}
