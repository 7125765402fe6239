package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/phanxgames/tween"
	"github.com/phanxgames/tween/easing"
	"github.com/spf13/cobra"
)

type curveFlags struct {
	overshoot float64
	period    float64
}

func (f *curveFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.overshoot, "overshoot", easing.DefaultOvershoot, "shape parameter (Back overshoot, Elastic amplitude)")
	cmd.Flags().Float64Var(&f.period, "period", easing.DefaultPeriod, "Elastic period")
}

// newRootCmd builds a fresh command tree so tests can run it in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "easeplot",
		Short:         "Inspect easing curves and tween presets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newPresetsCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every easing kind",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range easing.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kindLabel(k))
			}
		},
	}
}

func newSampleCmd() *cobra.Command {
	var (
		steps int
		curve curveFlags
	)
	cmd := &cobra.Command{
		Use:   "sample KIND",
		Short: "Print a curve's value at evenly spaced times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := easing.ParseKind(args[0])
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			for _, p := range sample(k, steps, curve.overshoot, curve.period) {
				fmt.Fprintf(cmd.OutOrStdout(), "%.3f\t%s\n", p.t, valueLabel(p.v))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 10, "number of intervals")
	curve.register(cmd)
	return cmd
}

func newPlotCmd() *cobra.Command {
	var (
		width, height int
		curve         curveFlags
	)
	cmd := &cobra.Command{
		Use:   "plot KIND",
		Short: "Draw a curve as ASCII art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := easing.ParseKind(args[0])
			if err != nil {
				return err
			}
			if width < 2 || height < 2 {
				return fmt.Errorf("plot needs at least 2x2 cells, got %dx%d", width, height)
			}
			fmt.Fprintln(cmd.OutOrStdout(), kindLabel(k))
			for _, line := range plot(sample(k, width-1, curve.overshoot, curve.period), height) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "W", 60, "columns")
	cmd.Flags().IntVarP(&height, "height", "H", 16, "rows")
	curve.register(cmd)
	return cmd
}

func newPresetsCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "presets FILE",
		Short: "Validate and summarize a tween preset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := tween.LoadPresets(args[0])
			if err != nil {
				return err
			}
			printPresets(cmd.OutOrStdout(), lib)
			if !watch {
				return nil
			}
			return watchPresets(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-validate on every change")
	return cmd
}

func watchPresets(out, errOut io.Writer, path string) error {
	w, err := tween.WatchPresets(path)
	if err != nil {
		return err
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Fprintln(out, color.CyanString("watching %s", path))
	for {
		select {
		case lib, ok := <-w.Updates:
			if !ok {
				return nil
			}
			fmt.Fprintln(out, color.GreenString("reloaded"))
			printPresets(out, lib)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(errOut, color.RedString("error:"), err)
		case <-interrupt:
			return nil
		}
	}
}

func printPresets(out io.Writer, lib *tween.PresetLibrary) {
	for _, name := range lib.Names() {
		p, _ := lib.Get(name)
		var flags []string
		if p.Delay > 0 {
			flags = append(flags, fmt.Sprintf("delay %.2fs", p.Delay))
		}
		if p.Additive {
			flags = append(flags, "additive")
		}
		line := fmt.Sprintf("%-16s %.2fs  %s", color.New(color.Bold).Sprint(name), p.Duration, kindLabel(p.Easing))
		if len(flags) > 0 {
			line += "  (" + strings.Join(flags, ", ") + ")"
		}
		fmt.Fprintln(out, line)
	}
}

// kindLabel colors a kind name by family: In yellow, Out green, InOut cyan.
func kindLabel(k easing.Kind) string {
	name := k.String()
	switch {
	case k.IsInOut():
		return color.CyanString(name)
	case strings.HasPrefix(name, "Out"):
		return color.GreenString(name)
	case strings.HasPrefix(name, "In"):
		return color.YellowString(name)
	}
	return name
}

// valueLabel highlights values outside [0, 1].
func valueLabel(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	if v < 0 || v > 1 {
		return color.MagentaString(s)
	}
	return s
}
