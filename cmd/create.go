package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnyst/learnyst/internal/creation"
	"github.com/learnyst/learnyst/internal/subject"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subject from a syllabus without the TUI",
	Long: `Run the subject creation workflow headlessly against a freshly seeded
dashboard and print the new subject, its learning path and the updated
statistics. Nothing is saved.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().String("name", "", "Subject name")
	createCmd.Flags().String("syllabus", "", "Syllabus content")
	createCmd.Flags().String("syllabus-file", "", "Read syllabus content from a file")
	createCmd.Flags().Bool("json", false, "Print JSON instead of text")
	createCmd.MarkFlagsMutuallyExclusive("syllabus", "syllabus-file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	syllabus, _ := cmd.Flags().GetString("syllabus")
	asJSON, _ := cmd.Flags().GetBool("json")

	if path, _ := cmd.Flags().GetString("syllabus-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read syllabus: %w", err)
		}
		syllabus = string(data)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, creator := newWorkflow(cfg, logger)
	subj, err := creator.Create(cmd.Context(), creation.Form{Name: name, Syllabus: syllabus})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, struct {
			Subject   *subject.Subject  `json:"subject"`
			Aggregate subject.Aggregate `json:"aggregate"`
		}{subj, store.Aggregate()})
	}

	fmt.Fprintln(out, creator.Snapshot().Notice)
	fmt.Fprintf(out, "\n%s  (%s)\n\n", subj.Name, subject.DetailRoute(subj.ID))
	if err := writeOutline(out, subj.MindMap); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return writeSubjects(out, store.Subjects())
}
