package config

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// ParseRatios parses a "label=ratio,label=ratio" list as given on the
// command line.
func ParseRatios(s string) (map[string]float64, error) {
	ratios := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		label, value, ok := strings.Cut(part, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, errors.NewInvalidConfigurationError("ratios", "expected label=ratio", part)
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.NewInvalidConfigurationError("ratios", "ratio is not a number", part)
		}
		if _, dup := ratios[label]; dup {
			return nil, errors.NewInvalidConfigurationError("ratios", "label given twice", label)
		}
		ratios[label] = r
	}
	if len(ratios) == 0 {
		return nil, errors.NewInvalidConfigurationError("ratios", "no label=ratio pairs", s)
	}
	return ratios, nil
}
