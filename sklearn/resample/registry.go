package resample

import (
	"github.com/YuminosukeSato/imbalance/core/model"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Names lists the resamplers New can build.
func Names() []string {
	return []string{randomOverSamplerName}
}

// Lookup checks that name refers to a known resampler. Names are matched
// exactly or in their snake_case form ("random_over_sampler").
func Lookup(name string) error {
	switch name {
	case randomOverSamplerName, "random_over_sampler":
		return nil
	default:
		return errors.Wrapf(errors.ErrUnknownResampler, "%q (known: %v)", name, Names())
	}
}

// New builds a resampler by name.
func New[L comparable](name string, opts ...Option[L]) (model.Resampler[L], error) {
	if err := Lookup(name); err != nil {
		return nil, err
	}
	return NewRandomOverSampler(opts...), nil
}
