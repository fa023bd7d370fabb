package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/imbalance/core/model"
	"github.com/YuminosukeSato/imbalance/pkg/config"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
	"github.com/YuminosukeSato/imbalance/pkg/log"
	"github.com/YuminosukeSato/imbalance/sklearn/resample"
)

// flags holds the raw command-line values. Only flags the user changed
// override the config file.
type flags struct {
	configPath string
	logLevel   string
	logFormat  string

	input      string
	output     string
	label      string
	props      []string
	noHeader   bool
	method     string
	ratio      float64
	ratios     string
	shuffle    bool
	noValidate bool
	strict     bool
	seed       int64
	plot       string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:          "oversample",
		Short:        "Balance class distributions by random oversampling",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "json", "log format (json, console)")

	root.AddCommand(newResampleCmd(f), newPlanCmd(f))
	return root
}

// addDataFlags registers the flags shared by resample and plan.
func addDataFlags(cmd *cobra.Command, f *flags) {
	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "input CSV file")
	fs.StringVar(&f.label, "label", "", "label column (default: last column)")
	fs.StringSliceVar(&f.props, "props", nil, "columns carried through as properties")
	fs.BoolVar(&f.noHeader, "no-header", false, "input has no header row")
	fs.StringVar(&f.method, "method", "RandomOverSampler", "resampler name")
	fs.Float64Var(&f.ratio, "ratio", 1.0, "ratio applied to every class, in [0, 1]")
	fs.StringVar(&f.ratios, "ratios", "", "per-class ratios, e.g. fraud=1,chargeback=0.5")
	fs.BoolVar(&f.strict, "strict", false, "reject --ratios that omit a class")
	cmd.MarkFlagsMutuallyExclusive("ratio", "ratios")
	_ = cmd.MarkFlagRequired("input")
}

// resolveConfig layers defaults, the config file and changed flags.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Defaults()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if changed("label") {
		cfg.LabelColumn = f.label
	}
	if changed("props") {
		cfg.Properties = f.props
	}
	if changed("method") {
		cfg.Method = f.method
	}
	if changed("ratio") {
		r := f.ratio
		cfg.Ratio = config.RatioConfig{Scalar: &r}
	}
	if changed("ratios") {
		ratios, err := config.ParseRatios(f.ratios)
		if err != nil {
			return nil, err
		}
		cfg.Ratio = config.RatioConfig{PerClass: ratios}
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("shuffle") {
		cfg.Shuffle = &f.shuffle
	}
	if changed("no-validate") {
		validate := !f.noValidate
		cfg.Validate = &validate
	}
	if changed("seed") {
		cfg.RandomSeed = &f.seed
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config, w io.Writer) error {
	if cfg.LogFormat == "console" {
		_, err := log.SetupZerolog(zerolog.ConsoleWriter{Out: w, NoColor: true}, cfg.LogLevel)
		return err
	}
	return log.SetupLoggerTo(w, cfg.LogLevel)
}

// planner is implemented by resamplers that can report their plan without
// drawing samples.
type planner interface {
	ComputePlan(y []string) (resample.Plan[string], error)
}

func newResampler(cfg *config.Config) (planner, model.Resampler[string], error) {
	r, err := resample.New[string](cfg.Method, cfg.Options()...)
	if err != nil {
		return nil, nil, errors.NewInvalidConfigurationError("method", err.Error(), cfg.Method)
	}
	p, ok := r.(planner)
	if !ok {
		return nil, nil, errors.NewInvalidConfigurationError("method", "resampler cannot compute a plan", cfg.Method)
	}
	return p, r, nil
}
