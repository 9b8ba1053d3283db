// Command magvar evaluates the geomagnetic field model from the command line.
//
// Usage:
//
//	magvar variation --lat 40.015 --lon -105.27 --date 2025-06-01
//	magvar field --lat 80 --lon 0 --alt 100 --date 2027.5
//	magvar variation --lat-dm "51 30.0 N" --lon-dm "0 7.8 W"
//	magvar heading --lat 51.5 --lon -0.13 --heading 270 --direction true_to_compass
//	magvar compass-error --lat 51.5 --lon -0.13 --true-heading 90 --compass 92
//	magvar model
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
