package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/llehouerou/slidemenu/internal/config"
	"github.com/llehouerou/slidemenu/internal/ease"
	"github.com/llehouerou/slidemenu/internal/errmsg"
	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/timeline"
)

func newTimelineCmd(f *flags) *cobra.Command {
	var items, steps int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print each element's local progress across the opening animation",
		Long: `timeline samples the opening animation at evenly spaced global progress
values and prints the eased local progress of every layer, the panel, every
item and the socials block, using the theme from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if items < 0 {
				return errors.New("--items must not be negative")
			}
			if steps < 1 {
				return errors.New("--steps must be at least 1")
			}
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
			}
			return printTimeline(cmd.OutOrStdout(), cfg.ResolveTheme(), items, steps)
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 4, "number of menu items")
	cmd.Flags().IntVarP(&steps, "steps", "s", 10, "number of intervals between 0 and 1")
	return cmd
}

func printTimeline(w io.Writer, t theme.Theme, items, steps int) error {
	tl := timeline.New(t, len(t.LayerColors), items)

	headers := []string{"p"}
	for i := range tl.Layers {
		headers = append(headers, "layer "+strconv.Itoa(i+1))
	}
	headers = append(headers, "panel")
	for i := range tl.Items {
		headers = append(headers, "item "+strconv.Itoa(i+1))
	}
	headers = append(headers, "socials")

	rows := make([][]string, 0, steps+1)
	for s := 0; s <= steps; s++ {
		f := tl.At(float64(s) / float64(steps))
		row := []string{format(f.Progress)}
		for _, v := range f.Layers {
			row = append(row, format(v))
		}
		row = append(row, format(f.Panel))
		for _, v := range f.Items {
			row = append(row, format(v))
		}
		row = append(row, format(f.Socials))
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// curveSamples are the inputs shown for every curve by the curves command.
var curveSamples = []float64{0.25, 0.5, 0.75}

func newCurvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the easing curve names accepted in the theme",
		Long: `curves prints every easing curve name that panel_curve, layer_curve and
item_curve accept, whether it overshoots past 1, and its value at a few
sample points.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCurves(cmd.OutOrStdout())
		},
	}
}

func printCurves(w io.Writer) error {
	headers := []string{"curve", "overshoots"}
	for _, x := range curveSamples {
		headers = append(headers, "at "+format(x))
	}

	rows := make([][]string, 0, len(ease.Curves))
	for _, c := range ease.Curves {
		over := "no"
		if c.Overshoots() {
			over = "yes"
		}
		row := []string{string(c), over}
		for _, x := range curveSamples {
			row = append(row, format(c.Transform(x)))
		}
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}
