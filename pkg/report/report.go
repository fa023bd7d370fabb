// Package report renders class distributions before and after resampling
// as a text table or a grouped bar chart.
package report

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/imbalance/metrics"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Comparison pairs the label vectors before and after resampling.
type Comparison[L comparable] struct {
	Before metrics.Distribution[L]
	After  metrics.Distribution[L]
	// Labels is the union of both label sets, before's order first.
	Labels []L
}

// Compare builds a Comparison from two label vectors.
func Compare[L comparable](before, after []L) Comparison[L] {
	c := Comparison[L]{
		Before: metrics.ClassDistribution(before),
		After:  metrics.ClassDistribution(after),
	}
	seen := make(map[L]bool)
	for _, labels := range [][]L{c.Before.Labels, c.After.Labels} {
		for _, l := range labels {
			if !seen[l] {
				seen[l] = true
				c.Labels = append(c.Labels, l)
			}
		}
	}
	return c
}

// WriteTable renders per-class counts and proportions before and after,
// with imbalance ratio and normalised entropy in the footer.
func WriteTable[L comparable](w io.Writer, c Comparison[L]) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Class Distribution")
	t.AppendHeader(table.Row{"CLASS", "BEFORE", "SHARE", "AFTER", "SHARE", "ADDED"})

	for _, l := range c.Labels {
		nb, na := c.Before.Count(l), c.After.Count(l)
		t.AppendRow(table.Row{
			fmt.Sprint(l),
			nb, share(nb, c.Before.Total),
			na, share(na, c.After.Total),
			fmt.Sprintf("%+d", na-nb),
		})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"TOTAL", c.Before.Total, "", c.After.Total, "", fmt.Sprintf("%+d", c.After.Total-c.Before.Total)})

	footer := table.Row{"IMBALANCE", "", "", "", "", ""}
	entropy := table.Row{"ENTROPY", "", "", "", "", ""}
	if c.Before.Total > 0 {
		if ir, err := ratioAndEntropy(c.Before); err == nil {
			footer[1], entropy[1] = ir[0], ir[1]
		}
	}
	if c.After.Total > 0 {
		if ir, err := ratioAndEntropy(c.After); err == nil {
			footer[3], entropy[3] = ir[0], ir[1]
		}
	}
	t.AppendFooter(footer)
	t.AppendFooter(entropy)

	t.Render()
	return nil
}

func share(n, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%6.2f%%", float64(n)/float64(total)*100)
}

func ratioAndEntropy[L comparable](d metrics.Distribution[L]) ([2]string, error) {
	y := expand(d)
	ir, err := metrics.ImbalanceRatio(y)
	if err != nil {
		return [2]string{}, err
	}
	h, err := metrics.BalanceEntropy(y)
	if err != nil {
		return [2]string{}, err
	}
	return [2]string{fmt.Sprintf("%.2f", ir), fmt.Sprintf("%.3f", h)}, nil
}

// expand rebuilds a label vector with the distribution's counts.
func expand[L comparable](d metrics.Distribution[L]) []L {
	y := make([]L, 0, d.Total)
	for i, l := range d.Labels {
		for j := 0; j < d.Counts[i]; j++ {
			y = append(y, l)
		}
	}
	return y
}

var (
	beforeColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	afterColor  = color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff}
)

// PlotDistribution saves a grouped bar chart of class counts before and
// after to path. The image format follows the file extension (.png, .svg,
// .pdf, ...).
func PlotDistribution[L comparable](path string, c Comparison[L]) error {
	if len(c.Labels) == 0 {
		return errors.ErrEmptyData
	}

	before := make(plotter.Values, len(c.Labels))
	after := make(plotter.Values, len(c.Labels))
	names := make([]string, len(c.Labels))
	for i, l := range c.Labels {
		before[i] = float64(c.Before.Count(l))
		after[i] = float64(c.After.Count(l))
		names[i] = fmt.Sprint(l)
	}

	p := plot.New()
	p.Title.Text = "Class distribution"
	p.Y.Label.Text = "Samples"

	w := vg.Points(18)
	beforeBars, err := plotter.NewBarChart(before, w)
	if err != nil {
		return errors.Wrap(err, "building bar chart")
	}
	beforeBars.LineStyle.Width = vg.Length(0)
	beforeBars.Color = beforeColor
	beforeBars.Offset = -w / 2

	afterBars, err := plotter.NewBarChart(after, w)
	if err != nil {
		return errors.Wrap(err, "building bar chart")
	}
	afterBars.LineStyle.Width = vg.Length(0)
	afterBars.Color = afterColor
	afterBars.Offset = w / 2

	p.Add(beforeBars, afterBars)
	p.Legend.Add("before", beforeBars)
	p.Legend.Add("after", afterBars)
	p.Legend.Top = true
	p.NominalX(names...)

	width := vg.Length(len(c.Labels))*3*w + 2*vg.Inch
	if err := p.Save(width, 3*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving chart to %s", path)
	}
	return nil
}
