package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/imbalance/pkg/config"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
	csvio "github.com/YuminosukeSato/imbalance/pkg/io/csv"
	"github.com/YuminosukeSato/imbalance/pkg/log"
	"github.com/YuminosukeSato/imbalance/pkg/report"
	"github.com/YuminosukeSato/imbalance/sklearn/resample"
)

func newResampleCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resample",
		Short: "Oversample minority classes and write the balanced CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResample(cmd, f)
		},
	}
	addDataFlags(cmd, f)
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output CSV file")
	fs.BoolVar(&f.shuffle, "shuffle", true, "shuffle the output rows")
	fs.BoolVar(&f.noValidate, "no-validate", false, "skip input validation")
	fs.Int64Var(&f.seed, "seed", -1, "random seed (negative: unseeded)")
	fs.StringVar(&f.plot, "plot", "", "write a before/after bar chart (.png, .svg, .pdf)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func readTable(f *flags, cfg *config.Config, extra ...csvio.Option) (*csvio.Table, error) {
	opts := []csvio.Option{csvio.WithHeader(!f.noHeader), csvio.WithPropertyColumns(cfg.Properties...)}
	if cfg.LabelColumn != "" {
		opts = append(opts, csvio.WithLabelColumn(cfg.LabelColumn))
	}
	return csvio.NewReader(append(opts, extra...)...).ReadFile(f.input)
}

// tableDataset binds the table's columns to a resampling dataset.
func tableDataset(t *csvio.Table) resample.Dataset[string] {
	var props resample.Properties
	if len(t.PropertyNames) > 0 {
		props = make(resample.Properties, len(t.PropertyNames))
		for _, name := range t.PropertyNames {
			props[name] = resample.Values[string](t.Props[name])
		}
	}
	return resample.NewDataset[string](resample.NewDenseFeatures(t.X), t.Labels, props)
}

// resampledTable rebuilds a table with src's column layout from resampled
// columns.
func resampledTable(src *csvio.Table, X resample.Features, y []string, props resample.Properties) (*csvio.Table, error) {
	dense, ok := X.(*resample.DenseFeatures)
	if !ok {
		return nil, errors.NewInternalInvariantError("resampledTable", fmt.Sprintf("unexpected feature container %T", X))
	}
	out := &csvio.Table{
		Header:        src.Header,
		FeatureNames:  src.FeatureNames,
		LabelName:     src.LabelName,
		PropertyNames: src.PropertyNames,
		X:             dense.M,
		Labels:        y,
		Props:         make(map[string][]string, len(src.PropertyNames)),
	}
	for _, name := range src.PropertyNames {
		col, ok := props[name].(resample.Values[string])
		if !ok {
			return nil, errors.NewInternalInvariantError("resampledTable", "property "+name+" lost its type")
		}
		out.Props[name] = col
	}
	return out, nil
}

func runResample(cmd *cobra.Command, f *flags) error {
	start := time.Now()
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}
	logger := log.GetLoggerWithName("cli")

	_, r, err := newResampler(cfg)
	if err != nil {
		return err
	}
	tbl, err := readTable(f, cfg)
	if err != nil {
		return err
	}

	ds := tableDataset(tbl)
	X, y, props, err := r.FitResample(ds.X, ds.Y, ds.Props)
	if err != nil {
		logger.Error("Resampling failed", log.ErrAttrKey, err)
		return err
	}

	out, err := resampledTable(tbl, X, y, props)
	if err != nil {
		return err
	}
	if err := csvio.NewWriter(csvio.WithHeader(!f.noHeader)).WriteFile(f.output, out); err != nil {
		return err
	}

	cmp := report.Compare(tbl.Labels, y)
	if err := report.WriteTable(cmd.OutOrStdout(), cmp); err != nil {
		return err
	}
	if f.plot != "" {
		if err := report.PlotDistribution(f.plot, cmp); err != nil {
			return err
		}
	}

	logger.Info("Resampling complete",
		log.OperationKey, log.OperationFitResample,
		log.SamplesKey, tbl.Len(),
		log.OutputSamplesKey, len(y),
		log.FeaturesKey, len(tbl.FeatureNames),
		log.PropertiesKey, len(tbl.PropertyNames),
		log.RatioKey, cfg.Ratio.Spec().String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}
