package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/learnyst/learnyst/internal/subject"
)

// writeSubjects prints subjects as a table followed by the aggregate line.
func writeSubjects(w io.Writer, subjects []subject.Subject) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Progress", "Topics")
	for _, s := range subjects {
		topics := fmt.Sprintf("%d of %d", s.CompletedTopics, s.TotalTopics)
		if s.IsComplete() {
			topics += " ✓"
		}
		table.Append(s.ID, s.Name, strconv.Itoa(s.Progress)+"%", topics)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return writeAggregate(w, subject.ComputeAggregate(subjects))
}

func writeAggregate(w io.Writer, agg subject.Aggregate) error {
	_, err := fmt.Fprintf(w, "\n%d subjects · %d%% average progress · %d of %d total topics completed\n",
		agg.Count, agg.AverageProgress, agg.CompletedTopics, agg.TotalTopics)
	return err
}

// writeOutline prints a topic tree, two spaces per level.
func writeOutline(w io.Writer, nodes []subject.TopicNode) error {
	return writeNodes(w, nodes, "")
}

func writeNodes(w io.Writer, nodes []subject.TopicNode, indent string) error {
	for _, n := range nodes {
		mark := "○"
		if n.IsCompleted {
			mark = "●"
		}
		if _, err := fmt.Fprintf(w, "%s%s %s  [%s]\n", indent, mark, n.Name, n.ID); err != nil {
			return err
		}
		if err := writeNodes(w, n.Children, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
