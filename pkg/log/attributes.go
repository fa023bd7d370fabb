// Package log defines standard attribute keys for resampling operations.
//
// Using these keys keeps log records from every resampler and from the CLI
// filterable with the same field names. Keys follow a hierarchical naming
// convention (e.g. "data.samples", "resample.ratio").

package log

// Operation context.
const (
	// ModelNameKey identifies the resampler type.
	// Examples: "RandomOverSampler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit_resample", "plan", "validate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is emitting the record.
	// Examples: "resample", "cli", "config"
	ComponentKey = "ml.component"

	// PhaseKey indicates the lifecycle phase.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey is the number of input samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns, when known.
	FeaturesKey = "data.features"

	// OutputSamplesKey is the number of samples after resampling.
	OutputSamplesKey = "data.output_samples"

	// PropertiesKey lists the names of the auxiliary property columns.
	PropertiesKey = "data.properties"
)

// Resampling.
const (
	// RatioKey records the ratio specification in effect.
	RatioKey = "resample.ratio"

	// ShuffleKey records whether the output order is permuted.
	ShuffleKey = "resample.shuffle"

	// ValidateKey records whether input validation runs.
	ValidateKey = "resample.validate"

	// ClassesKey is the number of distinct labels seen.
	ClassesKey = "resample.classes"

	// MajorityCountKey is the size of the majority class.
	MajorityCountKey = "resample.majority_count"

	// DeficitTotalKey is the total number of duplicated samples.
	DeficitTotalKey = "resample.deficit_total"

	// PlanKey holds the per-class deficits.
	PlanKey = "resample.plan"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// ConfigPathKey is the configuration file that was loaded.
	ConfigPathKey = "config.path"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFitResample = "fit_resample"
	OperationPlan        = "plan"
	OperationValidate    = "validate"

	PhasePreprocessing = "preprocessing"

	ErrorInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrorInvalidInput         = "INVALID_INPUT"
	ErrorInternalInvariant    = "INTERNAL_INVARIANT"
	ErrorDimensionMismatch    = "DIMENSION_MISMATCH"
)
