package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [puzzle]",
		Short: "Check whether a grid is solved",
		Long: `Check reads a grid like solve does and reports its state: solved,
consistent but incomplete, or contradictory. Anything short of solved
exits non-zero, so check works as a verifier in scripts.

Examples:
  sudoku solve --line --input puzzle.txt | sudoku check
  sudoku check --input filled.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the grid from a file")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readPuzzle(args)
	if err != nil {
		return err
	}

	switch {
	case g.IsSolved():
		fmt.Println("solved")
		return nil
	case !g.IsValid():
		return fmt.Errorf("grid repeats a value within a row, column, or block")
	default:
		return fmt.Errorf("grid is consistent but has %d blank cells", g.Blanks())
	}
}
