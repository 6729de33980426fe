package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/tsplib"
)

type solveFlags struct {
	file       string
	configPath string

	ants        int
	alpha       float64
	beta        float64
	evaporation float64
	iterations  int
	cutoff      float64
	optimal     float64
	seed        int64
	workers     int

	csvPath string
	quiet   bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the colony on a TSPLIB instance",
		Long: `Solve reads a TSPLIB EUC_2D instance and runs the Ant System colony
over it. By default the run lasts a fixed number of iterations; passing
--cutoff switches to ratio mode, which runs until the best tour drops
under cutoff times the known optimum. Ratio mode needs an optimum, taken
from --optimal, the config file, or the built-in catalog of classic
instances (berlin52, eil51, ...).

The best tour goes to stdout; progress lines go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "TSPLIB EUC_2D instance to solve (required)")
	fl.StringVar(&f.configPath, "config", "", "YAML file with solver defaults")
	fl.IntVar(&f.ants, "ants", aco.DefaultAnts, "ants constructing tours each iteration")
	fl.Float64Var(&f.alpha, "alpha", aco.DefaultAlpha, "pheromone exponent")
	fl.Float64Var(&f.beta, "beta", aco.DefaultBeta, "inverse-distance exponent")
	fl.Float64Var(&f.evaporation, "evaporation", aco.DefaultEvaporationRate, "fraction of trail evaporated each iteration")
	fl.IntVar(&f.iterations, "iterations", aco.DefaultIterations, "iterations to run in fixed mode")
	fl.Float64Var(&f.cutoff, "cutoff", 0, "stop once best/optimal drops under this ratio (needs a known optimum)")
	fl.Float64Var(&f.optimal, "optimal", 0, "known optimal tour length (default: resolved from the instance name)")
	fl.Int64Var(&f.seed, "seed", 0, "base seed for the run; 0 picks the library default")
	fl.IntVar(&f.workers, "workers", 1, "goroutines constructing tours; the result is identical for any value")
	fl.StringVar(&f.csvPath, "csv", "", "write per-iteration stats to this CSV file")
	fl.BoolVar(&f.quiet, "quiet", false, "suppress per-iteration progress logging")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	if f.configPath != "" {
		cfg, err := loadConfig(f.configPath)
		if err != nil {
			return configErr(err)
		}
		applyConfig(cmd, cfg, &f)
	}
	if f.cutoff < 0 {
		return configErrf("cutoff must be positive, got %v", f.cutoff)
	}

	inst, err := tsplib.ParseFile(f.file)
	if err != nil {
		return configErr(err)
	}
	name := instanceName(inst, f.file)

	optimal := f.optimal
	if optimal <= 0 {
		if v, ok := tsplib.KnownOptimal(name); ok {
			optimal = v
		}
	}

	opts := aco.DefaultOptions()
	opts.Ants = f.ants
	opts.Alpha = f.alpha
	opts.Beta = f.beta
	opts.EvaporationRate = f.evaporation
	opts.Iterations = f.iterations
	opts.Seed = f.seed
	opts.Workers = f.workers
	if f.cutoff > 0 {
		if optimal <= 0 {
			return configErrf("cutoff %v needs a known optimum: pass --optimal or solve a cataloged instance", f.cutoff)
		}
		opts.Stop = aco.StopAtTargetRatio
		opts.TargetRatio = f.cutoff
		opts.KnownOptimal = optimal
	}

	var rows [][]string
	if f.csvPath != "" {
		rows = make([][]string, 0, f.iterations+1)
		rows = append(rows, []string{"iteration", "best", "mean", "worst", "best_overall"})
	}
	opts.OnIteration = func(st aco.IterationStats) {
		if !f.quiet {
			slog.Info("iteration",
				"iter", st.Iteration,
				"best", st.Best,
				"mean", st.Mean,
				"worst", st.Worst,
				"overall", st.BestOverall)
		}
		if f.csvPath != "" {
			rows = append(rows, []string{
				itoa(st.Iteration), ftoa(st.Best), ftoa(st.Mean), ftoa(st.Worst), ftoa(st.BestOverall),
			})
		}
	}

	colony, err := aco.NewColony(inst.Points, opts)
	if err != nil {
		return configErr(err)
	}

	slog.Info("solving",
		"instance", name,
		"cities", colony.N(),
		"ants", opts.Ants,
		"alpha", opts.Alpha,
		"beta", opts.Beta,
		"evaporation", opts.EvaporationRate,
		"mode", modeString(opts),
		"seed", opts.Seed,
		"workers", opts.Workers,
		"seed_tour", colony.SeedTourLength())

	start := time.Now()
	res, err := colony.Run()
	if err != nil {
		return runtimeErr(err)
	}

	slog.Info("solved",
		"best", res.BestLength,
		"found_at", res.BestAtIteration,
		"iterations", res.Iterations,
		"elapsed", time.Since(start))

	fmt.Printf("best: %.4f (found at iteration %d of %d)\n",
		res.BestLength, res.BestAtIteration, res.Iterations)
	if optimal > 0 {
		fmt.Printf("ratio: %.4f over optimum %s\n",
			res.BestLength/optimal, strconv.FormatFloat(optimal, 'f', -1, 64))
	}
	fmt.Printf("tour: %s\n", formatTour(res.BestTour))

	if f.csvPath != "" {
		if err = writeStatsCSV(f.csvPath, rows); err != nil {
			return runtimeErr(err)
		}
		slog.Info("stats written", "path", f.csvPath, "rows", len(rows)-1)
	}
	return nil
}

// applyConfig overlays file values onto flags the user did not set.
func applyConfig(cmd *cobra.Command, cfg *fileConfig, f *solveFlags) {
	fl := cmd.Flags()
	if !fl.Changed("ants") && cfg.Ants != 0 {
		f.ants = cfg.Ants
	}
	if !fl.Changed("alpha") && cfg.Alpha != 0 {
		f.alpha = cfg.Alpha
	}
	if !fl.Changed("beta") && cfg.Beta != 0 {
		f.beta = cfg.Beta
	}
	if !fl.Changed("evaporation") && cfg.Evaporation != 0 {
		f.evaporation = cfg.Evaporation
	}
	if !fl.Changed("iterations") && cfg.Iterations != 0 {
		f.iterations = cfg.Iterations
	}
	if !fl.Changed("cutoff") && cfg.Cutoff != 0 {
		f.cutoff = cfg.Cutoff
	}
	if !fl.Changed("optimal") && cfg.Optimal != 0 {
		f.optimal = cfg.Optimal
	}
	if !fl.Changed("seed") && cfg.Seed != 0 {
		f.seed = cfg.Seed
	}
	if !fl.Changed("workers") && cfg.Workers != 0 {
		f.workers = cfg.Workers
	}
}

// instanceName prefers the NAME header, then the file's base name, so the
// optimum catalog works for headerless files named after their instance.
func instanceName(inst *tsplib.Instance, path string) string {
	if inst.Name != "" {
		return inst.Name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func modeString(o aco.Options) string {
	if o.Stop == aco.StopAtTargetRatio {
		return fmt.Sprintf("ratio<%v of %v", o.TargetRatio, o.KnownOptimal)
	}
	return fmt.Sprintf("%d iterations", o.Iterations)
}

func writeStatsCSV(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = csv.NewWriter(f).WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatTour(tour []int) string {
	parts := make([]string, len(tour))
	var i int
	for i = 0; i < len(tour); i++ {
		parts[i] = strconv.Itoa(tour[i])
	}
	return strings.Join(parts, " ")
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
