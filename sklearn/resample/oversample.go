package resample

import (
	"context"
	"fmt"
	"time"

	"github.com/YuminosukeSato/imbalance/core/model"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
	"github.com/YuminosukeSato/imbalance/pkg/log"
)

const randomOverSamplerName = "RandomOverSampler"

// RandomOverSampler balances classes by duplicating randomly chosen minority
// samples. Its configuration is fixed at construction; the only state that
// changes between calls is the random source's position.
//
// A RandomOverSampler with the default source may be shared between
// goroutines. Results are then reproducible only for sequential calls.
type RandomOverSampler[L comparable] struct {
	ratio       RatioSpec[L]
	shuffle     bool
	validate    bool
	strict      bool
	randomState int64
	// customStrategy is set when WithStrategy replaced the ratio-driven
	// default; ratio and strict are then unused.
	customStrategy bool

	src       RandomSource
	validator Validator[L]
	strategy  Strategy[L]
	logger    log.Logger
}

var (
	_ model.Resampler[int]  = (*RandomOverSampler[int])(nil)
	_ model.ParameterGetter = (*RandomOverSampler[int])(nil)
)

// NewRandomOverSampler creates a RandomOverSampler. Defaults: ratio 1.0,
// shuffle on, validation on, unseeded.
//
//	ros := resample.NewRandomOverSampler(
//	    resample.WithRatios(map[string]float64{"fraud": 0.5}),
//	    resample.WithShuffle[string](false),
//	    resample.WithRandomState[string](42),
//	)
func NewRandomOverSampler[L comparable](opts ...Option[L]) *RandomOverSampler[L] {
	o := &RandomOverSampler[L]{
		ratio:       Scalar[L](1.0),
		shuffle:     true,
		validate:    true,
		randomState: -1,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.src == nil {
		if o.randomState >= 0 {
			o.src = NewSource(uint64(o.randomState))
		} else {
			o.src = newUnseededSource()
		}
	}
	if o.validator == nil {
		o.validator = DefaultValidator[L]{}
	}
	if o.strategy == nil {
		o.strategy = &RandomDuplication[L]{Ratio: o.ratio, Strict: o.strict}
	} else {
		o.customStrategy = true
	}

	return o
}

// FitResample returns X, y and props with minority classes oversampled. All
// three outputs have the same length and are index-aligned. When no class
// needs samples the inputs are returned unchanged.
func (o *RandomOverSampler[L]) FitResample(X Features, y []L, props Properties) (Features, []L, Properties, error) {
	out, err := o.FitResampleDataset(NewDataset(X, y, props))
	if err != nil {
		return nil, nil, nil, err
	}
	return out.X, out.Y, out.Props, nil
}

// FitResampleDataset is FitResample on a Dataset.
func (o *RandomOverSampler[L]) FitResampleDataset(ds Dataset[L]) (out Dataset[L], err error) {
	defer errors.Recover(&err, "RandomOverSampler.FitResample")

	start := time.Now()
	logger := o.getLogger()

	if err := o.checkConfig(); err != nil {
		logger.Error("Invalid resampler configuration", log.ErrAttrKey, err, log.ErrorCodeKey, log.ErrorInvalidConfiguration)
		return Dataset[L]{}, err
	}

	if o.validate {
		ds, err = o.validator.Validate(ds)
		if err != nil {
			return Dataset[L]{}, err
		}
	}

	counts := CountClasses(ds.Y)
	plan, err := o.strategy.ComputePlan(counts)
	if err != nil {
		return Dataset[L]{}, err
	}

	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("Oversampling plan computed",
			log.OperationKey, log.OperationPlan,
			log.SamplesKey, ds.Len(),
			log.ClassesKey, counts.Len(),
			log.MajorityCountKey, plan.MajorityCount,
			log.DeficitTotalKey, plan.Total(),
			log.PlanKey, plan.String(),
		)
	}

	if plan.Empty() {
		return ds, nil
	}

	indices := arange(ds.Len())
	duplicates, err := o.strategy.Draw(indices, ds.Y, plan, o.src)
	if err != nil {
		return Dataset[L]{}, err
	}
	if len(duplicates) != plan.Total() {
		return Dataset[L]{}, errors.NewInternalInvariantError("RandomOverSampler.FitResample",
			fmt.Sprintf("strategy drew %d samples for a plan of %d", len(duplicates), plan.Total()))
	}

	combined := combineIndices(indices, duplicates, o.src, o.shuffle)
	out, err = ds.Select(combined)
	if err != nil {
		return Dataset[L]{}, err
	}

	logger.Debug("Resampling finished",
		log.OperationKey, log.OperationFitResample,
		log.SamplesKey, ds.Len(),
		log.OutputSamplesKey, out.Len(),
		log.DeficitTotalKey, plan.Total(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ComputePlan returns the plan FitResample would follow for y without
// drawing any samples or consuming the random source.
func (o *RandomOverSampler[L]) ComputePlan(y []L) (Plan[L], error) {
	if err := o.checkConfig(); err != nil {
		return Plan[L]{}, err
	}
	return o.strategy.ComputePlan(CountClasses(y))
}

func (o *RandomOverSampler[L]) checkConfig() error {
	if v, ok := o.strategy.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

func (o *RandomOverSampler[L]) getLogger() log.Logger {
	l := o.logger
	if l == nil {
		l = log.GetLoggerWithName("resample")
	}
	return l.With(log.ModelNameKey, randomOverSamplerName)
}

// Source returns the source used for draws.
func (o *RandomOverSampler[L]) Source() RandomSource {
	return o.src
}

// GetParams returns the resampler's configuration.
// With a custom strategy, "strategy" names its type in place of the ratio
// settings.
func (o *RandomOverSampler[L]) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"shuffle":      o.shuffle,
		"validate":     o.validate,
		"random_state": o.randomState,
	}
	if o.customStrategy {
		params["strategy"] = fmt.Sprintf("%T", o.strategy)
	} else {
		params["ratio"] = o.ratio.String()
		params["strict"] = o.strict
	}
	return params
}

// String returns a scikit-learn style representation.
func (o *RandomOverSampler[L]) String() string {
	head := "ratio=" + o.ratio.String()
	if o.customStrategy {
		head = fmt.Sprintf("strategy=%T", o.strategy)
	}
	return fmt.Sprintf("%s(%s, shuffle=%t, validate=%t, random_state=%d)",
		randomOverSamplerName, head, o.shuffle, o.validate, o.randomState)
}
