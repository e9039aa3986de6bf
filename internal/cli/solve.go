package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "solve [lp.json]",
		Short: "Minimize an LP document with the CLP simplex solver",
		Long: `Minimize an LP document with the CLP simplex solver.

The input is a document produced by 'encode' (or any document in the same
JSON shape). Use "-" to read it from stdin. Without --output the solver
result is written to stdout as JSON.

An infeasible or unbounded system is not a command failure: the result
carries success=false and a status describing the outcome.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Solving system...")
			spinner.Start()

			result, cacheHit, err := runner.SolveWithCacheInfo(cmd.Context(), doc, "", pipeline.Options{Refresh: refresh})
			if err != nil {
				spinner.StopWithError("Solve failed")
				return err
			}
			spinner.Stop()

			if output == "" {
				return result.WriteJSON(os.Stdout)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			if err := result.WriteJSON(f); err != nil {
				return err
			}

			if result.Success {
				printSuccess("%s", result.Message)
				if result.ObjectiveValue != nil {
					printKeyValue("objective", strconv.FormatFloat(*result.ObjectiveValue, 'g', -1, 64))
				}
				printStats(doc.NumVariables(), len(doc.Inequalities), cacheHit)
			} else {
				printWarning("%s", result.Message)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}

// readDocument reads an LP document from a file or stdin ("-").
func readDocument(path string) (*lp.Document, error) {
	if path == "-" {
		return lp.ReadJSON(os.Stdin)
	}
	return lp.ReadFile(path)
}
