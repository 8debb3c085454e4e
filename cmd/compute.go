package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zorak1103/fact/internal/input"
	"github.com/zorak1103/fact/internal/logging"
)

// runFactorial reads one integer, from args[0] or stdin, and prints its factorial.
func runFactorial(cmd *cobra.Command, args []string) error {
	c, err := requireConfig()
	if err != nil {
		return err
	}

	computer, err := c.Computer()
	if err != nil {
		return err
	}

	parser := input.NewParser(computer.Arithmetic().Bits(), c.Input.Lenient)
	out := cmd.OutOrStdout()

	var n int64
	if len(args) == 1 {
		n, err = parser.Parse(args[0])
	} else {
		fmt.Fprint(out, c.Output.Prompt)
		n, err = parser.Read(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	logging.L.Debug("computing factorial",
		"n", n,
		"arithmetic", computer.Arithmetic(),
		"overflow", computer.OverflowPolicy(),
	)

	result, err := computer.Compute(n)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result.String())
	return nil
}
