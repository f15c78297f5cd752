package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"nineblock.dev/sudoku/internal/grid"
	"nineblock.dev/sudoku/internal/solver"
)

var (
	inputFile  string
	lineOutput bool
	findAll    bool
	limit      int
	maxSteps   int
	cpuProfile bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a 9x9 Sudoku puzzle given as 81 characters in row-major order,
with '.' or '0' for blanks. The puzzle is taken from the argument, from a
file with --input, or from standard input.

The search is deterministic: the same puzzle always yields the same
solution, and with --all the same enumeration order.

Examples:
  sudoku solve 005002000200000007010400300060010409800000001103070050004005080900000003000600900
  sudoku solve --input puzzle.txt
  cat puzzle.txt | sudoku solve --line
  sudoku solve --all --limit 10 005002...`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the puzzle from a file")
	solveCmd.Flags().BoolVar(&lineOutput, "line", false, "Print solutions as flat 81-character lines")
	solveCmd.Flags().BoolVarP(&findAll, "all", "a", false, "Enumerate every solution, not just the first")
	solveCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many solutions with --all (0 = no limit)")
	solveCmd.Flags().IntVar(&maxSteps, "maxSteps", 0, "Abort the single-solution search after this many steps (0 = no limit)")
	solveCmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(solveCmd)
}

// readPuzzle loads the puzzle from the positional argument, from --input, or
// from standard input, in that order of preference.
func readPuzzle(args []string) (grid.Grid, error) {
	var raw string
	switch {
	case len(args) == 1:
		raw = args[0]
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return grid.Grid{}, err
		}
		raw = string(data)
	default:
		data, err := io.ReadAll(io.LimitReader(os.Stdin, 4096))
		if err != nil {
			return grid.Grid{}, fmt.Errorf("reading stdin: %w", err)
		}
		raw = string(data)
	}
	return grid.Parse(raw)
}

func printGrid(g grid.Grid) {
	if lineOutput {
		fmt.Println(g.String())
	} else {
		fmt.Println(g.Format())
	}
}

// solveOne finds the first solution, driving the frontier step by step when
// a budget is set so a hopeless search stops instead of running forever.
func solveOne(g grid.Grid) (grid.Grid, error) {
	if maxSteps <= 0 {
		return solver.Solve(g)
	}

	f := solver.NewFrontier(g)
	for steps := 0; steps < maxSteps; steps++ {
		head, ok := f.Head()
		if !ok {
			return grid.Grid{}, solver.ErrNoSolution
		}
		if head.IsSolved() {
			return head, nil
		}
		f.Expand()
	}
	return grid.Grid{}, fmt.Errorf("no solution within %d steps", maxSteps)
}

// solveAll enumerates solutions until the frontier is exhausted or the
// --limit is reached.
func solveAll(g grid.Grid) error {
	f := solver.NewFrontier(g)
	found := 0
	for {
		sol, ok := f.Next()
		if !ok {
			break
		}
		found++

		if lineOutput {
			fmt.Println(sol.String())
		} else {
			fmt.Printf("Solution #%d:\n%s\n", found, sol.Format())
		}

		if limit > 0 && found >= limit {
			log.Debugf("stopping at solution limit %d", limit)
			break
		}
	}

	if found == 0 {
		return solver.ErrNoSolution
	}
	if !lineOutput {
		fmt.Printf("%d solution(s) found\n", found)
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	g, err := readPuzzle(args)
	if err != nil {
		return err
	}

	log.Debugf("parsed puzzle with %d blank cells", g.Blanks())
	if !g.IsValid() {
		log.Warn("givens already conflict, the search can only prove unsolvability")
	}

	if findAll {
		return solveAll(g)
	}

	start := time.Now()
	sol, err := solveOne(g)
	if err != nil {
		return err
	}
	log.Debugf("solved in %v", time.Since(start))

	printGrid(sol)
	return nil
}
