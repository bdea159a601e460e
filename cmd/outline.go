package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnyst/learnyst/internal/learnpath"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the learning path outline generated for new subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes := learnpath.Outline()
		if err := learnpath.Validate(nodes); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := writeOutline(out, nodes); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "\n%d topics in %d categories\n", learnpath.CountLeaves(nodes), len(nodes))
		return err
	},
}
