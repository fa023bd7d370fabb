package resample

import (
	"github.com/YuminosukeSato/imbalance/pkg/log"
)

// Option is a functional option for RandomOverSampler.
type Option[L comparable] func(*RandomOverSampler[L])

// WithRatio applies one ratio to every class (default 1.0).
func WithRatio[L comparable](r float64) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.ratio = Scalar[L](r)
	}
}

// WithRatios sets a ratio per class. Classes missing from ratios are not
// oversampled.
func WithRatios[L comparable](ratios map[L]float64) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.ratio = PerClass(ratios)
	}
}

// WithRatioSpec sets a prepared ratio specification.
func WithRatioSpec[L comparable](spec RatioSpec[L]) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.ratio = spec
	}
}

// WithShuffle sets whether the output order is permuted (default true).
func WithShuffle[L comparable](shuffle bool) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.shuffle = shuffle
	}
}

// WithValidate sets whether the Validator runs before resampling (default true).
func WithValidate[L comparable](validate bool) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.validate = validate
	}
}

// WithRandomState seeds the resampler's random source. A negative seed
// selects a fresh random seed.
func WithRandomState[L comparable](seed int64) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.randomState = seed
		o.src = nil
	}
}

// WithRandomSource injects a random source. The caller is responsible for
// serialising access if the resampler is shared between goroutines.
func WithRandomSource[L comparable](src RandomSource) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.src = src
	}
}

// WithStrictRatios rejects per-class ratios that omit a class present in y.
func WithStrictRatios[L comparable](strict bool) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.strict = strict
	}
}

// WithValidator replaces the DefaultValidator.
func WithValidator[L comparable](v Validator[L]) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.validator = v
	}
}

// WithStrategy replaces the random duplication strategy. Ratio options are
// ignored by custom strategies.
func WithStrategy[L comparable](s Strategy[L]) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.strategy = s
	}
}

// WithLogger sets the logger. By default the package logger from
// log.GetLogger is used at call time.
func WithLogger[L comparable](l log.Logger) Option[L] {
	return func(o *RandomOverSampler[L]) {
		o.logger = l
	}
}
