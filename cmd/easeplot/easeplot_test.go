package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/phanxgames/tween/easing"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsEveryKind(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(easing.Kinds()) {
		t.Fatalf("listed %d kinds, want %d", len(lines), len(easing.Kinds()))
	}
	if lines[0] != easing.Kinds()[0].String() {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "linear", "-n", "4")
	if err != nil {
		t.Fatal(err)
	}
	want := "0.000\t0.0000\n0.250\t0.2500\n0.500\t0.5000\n0.750\t0.7500\n1.000\t1.0000\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestSampleUnknownKind(t *testing.T) {
	_, err := run(t, "sample", "Wobbly")
	if !errors.Is(err, easing.ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestSampleRejectsZeroSteps(t *testing.T) {
	if _, err := run(t, "sample", "Linear", "--steps", "0"); err == nil {
		t.Error("expected error for zero steps")
	}
}

func TestSampleHonoursOvershoot(t *testing.T) {
	soft := sample(easing.OutBack, 10, easing.DefaultOvershoot, easing.DefaultPeriod)
	strong := sample(easing.OutBack, 10, 1.70158, easing.DefaultPeriod)
	if strong[6].v <= soft[6].v {
		t.Errorf("stronger overshoot should peak higher: %v <= %v", strong[6].v, soft[6].v)
	}
}

func TestPlotShape(t *testing.T) {
	lines := plot(sample(easing.Linear, 9, 1, 1), 10)
	if len(lines) != 10 {
		t.Fatalf("rows = %d, want 10", len(lines))
	}
	// Linear runs from bottom-left to top-right.
	if lines[0][len(lines[0])-1] != '*' {
		t.Errorf("top row %q should end with the last sample", lines[0])
	}
	if lines[9][0] != '*' {
		t.Errorf("bottom row %q should start with the first sample", lines[9])
	}
}

func TestPlotGrowsForOvershoot(t *testing.T) {
	lines := plot(sample(easing.OutBack, 20, 3, 1), 12)
	// Row of value 1 is marked but is no longer the top row.
	if strings.Contains(lines[0], "-") {
		t.Errorf("top row %q should be above the 1.0 reference line", lines[0])
	}
	if !strings.Contains(lines[0], "*") {
		t.Errorf("top row %q should hold the overshoot peak", lines[0])
	}
}

func TestPlotCommandValidatesSize(t *testing.T) {
	if _, err := run(t, "plot", "Linear", "-W", "1"); err == nil {
		t.Error("expected error for width 1")
	}
	out, err := run(t, "plot", "InOutElastic", "-W", "30", "-H", "8")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 9 {
		t.Errorf("lines = %d, want title + 8 rows", got)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets", filepath.Join("..", "..", "testdata", "presets.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"fade_in", "OutCubic", "additive", "delay 0.10s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPresetsCommandReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("a: { easing: Nope }"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "presets", path)
	if !errors.Is(err, easing.ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}
