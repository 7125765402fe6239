// Command easeplot inspects easing curves and tween preset files.
//
//	easeplot list
//	easeplot sample OutBack --steps 10 --overshoot 1.70158
//	easeplot plot InOutElastic --width 60 --height 16
//	easeplot presets ui.yaml --watch
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("easeplot:"), err)
		os.Exit(1)
	}
}
