// Package resample corrects class imbalance in labelled tabular data by
// oversampling minority classes with replacement.
//
// A RandomOverSampler duplicates existing minority-class samples until every
// class with a ratio r holds at least floor(r * N_max) samples, where N_max is
// the size of the majority class. X, y and every auxiliary property column
// stay index-aligned: row i of each output describes the same sample.
//
// The pipeline of a FitResample call is:
//
//	validate (optional) -> CountClasses -> ResolveRatios -> ComputePlan
//	  -> DrawDuplicates -> shuffle (optional) -> Dataset.Select
//
// Each stage is exported so that it can be reused or tested on its own.
//
// # Ratios
//
// A ratio is either a single value applied to every class (Scalar) or a
// per-class mapping (PerClass). Classes missing from a per-class mapping are
// left alone: they are not defaulted to 1.0. A warning lists them, and
// WithStrictRatios turns the situation into an InvalidConfigurationError.
// A ratio of 0.0 means "leave this class alone"; it never removes samples.
//
// Example:
//
//	X := resample.NewDenseFeatures(mat.NewDense(30, 2, data))
//	y := labels // []int, 20 x 0, 7 x 1, 3 x 2
//	ros := resample.NewRandomOverSampler(
//	    resample.WithRatio[int](1.0),
//	    resample.WithRandomState[int](42),
//	)
//	Xr, yr, _, err := ros.FitResample(X, y, nil)
//	// len(yr) == 60, every class holds 20 samples
package resample
