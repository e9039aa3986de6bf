package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	var (
		output    string
		objective string
		noCache   bool
		refresh   bool
	)

	cmd := &cobra.Command{
		Use:   "encode [problem.txt]",
		Short: "Translate a permutation pair into an LP document",
		Long: `Translate a permutation pair into an LP document.

The problem file holds one permutation per line with an optional objective
expression on a third line, for example:

  1 3 2
  2 1 3
  x_3 + y_3

Use "-" to read the problem from stdin. Without --output the document is
written to stdout as JSON; with --output it is written to the given file.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, fileObjective, err := readProblem(args[0])
			if err != nil {
				return err
			}
			if objective == "" {
				objective = fileObjective
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts := pipeline.Options{
				P1:        p1,
				P2:        p2,
				Objective: objective,
				Refresh:   refresh,
			}

			track := newProgress(c.Logger)
			doc, cacheHit, err := runner.EncodeWithCacheInfo(cmd.Context(), opts)
			if err != nil {
				return err
			}
			track.done(fmt.Sprintf("Encoded %d constraints", len(doc.Inequalities)))

			if output == "" {
				return doc.WriteJSON(os.Stdout)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			if err := doc.WriteJSON(f); err != nil {
				return err
			}

			printSuccess("Encoded %d×%d system", len(doc.Inequalities), doc.NumVariables())
			printStats(doc.NumVariables(), len(doc.Inequalities), cacheHit)
			printFile(output)
			printNewline()
			printNextStep("Solve it", fmt.Sprintf("minlp solve %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&objective, "objective", "", "objective expression (overrides the problem file)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}
