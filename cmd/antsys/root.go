package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes. Unclassified errors (cobra's own flag parsing included)
// count as configuration problems.
const (
	exitOK     = 0
	exitErr    = 1 // runtime failure: solving or writing results
	exitConfig = 2 // bad flags, config file, or instance input
)

// exitError carries the exit code a failure should terminate with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func configErr(err error) error { return &exitError{code: exitConfig, err: err} }

func configErrf(format string, args ...any) error {
	return &exitError{code: exitConfig, err: fmt.Errorf(format, args...)}
}

func runtimeErr(err error) error { return &exitError{code: exitErr, err: err} }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "antsys",
		Short: "Ant System solver for Euclidean TSP instances",
		Long: `antsys runs an Ant System colony over TSPLIB EUC_2D instances.

The solve command reads an instance, runs the colony and prints the best
tour found. The gen command produces synthetic instances (circles, grids,
uniform random scatters) in the same TSPLIB subset, so its output feeds
straight back into solve.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenCmd())
	return root
}
