// Package imbalance provides resampling tools for imbalanced classification
// datasets in Go.
//
// The central type is resample.RandomOverSampler, which raises the size of
// minority classes by duplicating randomly chosen members until every class
// reaches a configurable fraction of the majority class. Features, labels
// and any auxiliary per-sample properties stay index-aligned throughout.
//
// # Installation
//
//	go get github.com/YuminosukeSato/imbalance
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/imbalance/sklearn/resample"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
//	    y := []int{0, 0, 0, 0, 1}
//
//	    ros := resample.NewRandomOverSampler(resample.WithRandomState[int](42))
//	    Xr, yr, _, err := ros.FitResample(resample.NewDenseFeatures(X), y, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(Xr.Len(), yr) // 8 samples, four of each class
//	}
//
// # Packages
//
//   - sklearn/resample: RandomOverSampler, ratio resolution, planning and index sampling
//   - metrics: class distribution, imbalance ratio and balance entropy
//   - core/model: Resampler and container interfaces
//   - core/parallel: parallel row copying for large selections
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: slog and zerolog backed structured logging
//   - pkg/config: YAML configuration
//   - pkg/io/csv: labelled CSV tables
//   - pkg/report: before/after tables and charts
//   - cmd/oversample: command-line interface
//
// # scikit-learn Compatibility
//
// The API follows imbalanced-learn: ratios in [0, 1] relative to the
// majority class, an optional per-class mapping, shuffled output by default
// and fit_resample returning X, y and the properties together.
//
// # License
//
// Released under the MIT License.
package imbalance
