package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/pkg/check"
	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
	"github.com/wjlenhart/minLPsolver/pkg/solve"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		output      string
		solutionIn  string
		interactive bool
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "check [input.json]",
		Short: "Verify a candidate assignment against an LP document",
		Long: `Verify a candidate assignment against an LP document.

The input is a JSON array of two objects: the LP document and an object
with "variable_values". Alternatively pass the document as the argument
and a solver result file via --solution. Use "-" to read from stdin.

Every constraint and bound is checked with an absolute tolerance of 1e-8;
violations are listed in the report. Use --interactive to browse them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, values, err := readCheckInput(args[0], solutionIn)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			report, cacheHit, err := runner.CheckWithCacheInfo(cmd.Context(), doc, "", values, pipeline.Options{Refresh: refresh})
			if err != nil {
				return err
			}

			if interactive && len(report.Violations) > 0 {
				model := newViolationModel(report)
				if _, err := tea.NewProgram(model).Run(); err != nil {
					return fmt.Errorf("run violation browser: %w", err)
				}
			}

			if output == "" && !interactive {
				return report.WriteJSON(os.Stdout)
			}
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				if err := report.WriteJSON(f); err != nil {
					return err
				}
				printFile(output)
			}

			if report.AllSatisfied {
				printSuccess("All constraints satisfied")
				printStats(doc.NumVariables(), len(doc.Inequalities), cacheHit)
			} else {
				printError("%d constraint(s) violated", len(report.Violations))
				for _, v := range report.Violations {
					if v.Description != "" {
						printDetail("%s", v.Description)
					} else {
						printDetail("%s: %s", v.Expression, v.Violation)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file")
	cmd.Flags().StringVar(&solutionIn, "solution", "", "solver result file to check (input becomes the document)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse violations interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}

// readCheckInput loads the document and assignment, either from the combined
// two-element array form or from separate document and solver result files.
func readCheckInput(input, solutionPath string) (*lp.Document, map[string]float64, error) {
	if solutionPath == "" {
		if input == "-" {
			return check.ReadInput(os.Stdin)
		}
		return check.ReadInputFile(input)
	}

	doc, err := readDocument(input)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(solutionPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", solutionPath, err)
	}
	defer f.Close()

	result, err := solve.ReadJSON(f)
	if err != nil {
		return nil, nil, err
	}
	if result.VariableValues == nil {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput,
			"solver result in %s carries no variable values", solutionPath)
	}
	return doc, result.VariableValues, nil
}
