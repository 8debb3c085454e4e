package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/fact/internal/logging"
)

var (
	tableFrom int64
	tableTo   int64
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print n and n! for a range of inputs",
	Long: `Table prints one line per n in [from, to] with n and n! separated by a tab.

It stops at the first n that cannot be computed, such as the first overflow
under the error policy, and reports that error.`,
	Example: `  # 0! through 10!
  fact table

  # Find where int32 overflows
  fact table --arithmetic int32 --from 10 --to 15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}

		if tableFrom > tableTo {
			return fmt.Errorf("invalid range: --from %d is greater than --to %d", tableFrom, tableTo)
		}

		computer, err := c.Computer()
		if err != nil {
			return err
		}

		logging.L.Debug("printing factorial table", "from", tableFrom, "to", tableTo, "arithmetic", computer.Arithmetic())

		out := cmd.OutOrStdout()
		for n := tableFrom; n <= tableTo; n++ {
			v, err := computer.Compute(n)
			if err != nil {
				return fmt.Errorf("table stopped at n=%d: %w", n, err)
			}
			fmt.Fprintf(out, "%d\t%s\n", n, v.String())
		}

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().Int64Var(&tableFrom, "from", 0, "first n")
	tableCmd.Flags().Int64Var(&tableTo, "to", 10, "last n")
}
