package cmd

import (
	"github.com/spf13/cobra"

	"github.com/learnyst/learnyst/internal/subject"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the dashboard subjects and summary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		store := subject.NewStore()
		store.Initialize()
		subjects := store.Subjects()

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), struct {
				Subjects  []subject.Subject `json:"subjects"`
				Aggregate subject.Aggregate `json:"aggregate"`
			}{subjects, store.Aggregate()})
		}
		return writeSubjects(cmd.OutOrStdout(), subjects)
	},
}

func init() {
	subjectsCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}
