// Command lvcalc is a command-line front end for the lvcalc solvers:
// closed-form and Gaussian equation solving, polynomial roots, numeric
// integration and limits, symbolic derivatives, shape formulas, and an
// interactive keypad REPL for each calculator mode.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
