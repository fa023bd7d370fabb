package main

import (
	"fmt"

	"github.com/spf13/cobra"

	csvio "github.com/YuminosukeSato/imbalance/pkg/io/csv"
	"github.com/YuminosukeSato/imbalance/pkg/log"
	"github.com/YuminosukeSato/imbalance/pkg/report"
)

func newPlanCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show how many samples each class would gain, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, f)
		},
	}
	addDataFlags(cmd, f)
	return cmd
}

func runPlan(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	p, _, err := newResampler(cfg)
	if err != nil {
		return err
	}
	// Feature columns are not parsed; property columns are still checked.
	tbl, err := readTable(f, cfg, csvio.WithoutFeatures())
	if err != nil {
		return err
	}

	plan, err := p.ComputePlan(tbl.Labels)
	if err != nil {
		return err
	}

	projected := append([]string(nil), tbl.Labels...)
	for _, d := range plan.Deficits {
		for i := 0; i < d.Count; i++ {
			projected = append(projected, d.Label)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "majority: %s (%d)\nplan: %s\n", plan.MajorityLabel, plan.MajorityCount, plan)
	if err := report.WriteTable(out, report.Compare(tbl.Labels, projected)); err != nil {
		return err
	}

	log.GetLoggerWithName("cli").Debug("Plan computed",
		log.OperationKey, log.OperationPlan,
		log.SamplesKey, tbl.Len(),
		log.DeficitTotalKey, plan.Total(),
	)
	return nil
}
