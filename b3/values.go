package b3

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumber decodes a numeric cell. The exports mix plain floats (raw
// cell values) with pt-BR formatted strings ("1.234,56", sometimes with a
// leading "R$").
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return 0, fmt.Errorf("empty numeric cell")
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// optionalNumber decodes an optional numeric cell. Empty cells and
// non-numeric placeholders ("-") mean the value is absent, never an error.
func optionalNumber(s string) (value float64, ok bool) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
