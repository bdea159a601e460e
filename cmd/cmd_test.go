package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnyst/learnyst/internal/creation"
)

// execute runs the root command with args and returns its output. Flag
// values are reset first because the command tree is package-level.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestSubjectsTable(t *testing.T) {
	out, err := execute(t, "subjects")
	require.NoError(t, err)

	assert.Contains(t, out, "Machine Learning")
	assert.Contains(t, out, "Data Structures")
	assert.Contains(t, out, "16 of 24")
	assert.Contains(t, out, "2 subjects · 77% average progress · 32 of 42 total topics completed")
}

func TestSubjectsJSON(t *testing.T) {
	out, err := execute(t, "subjects", "--json")
	require.NoError(t, err)

	var got struct {
		Subjects []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Progress int    `json:"progress"`
		} `json:"subjects"`
		Aggregate struct {
			TotalSubjects   int `json:"totalSubjects"`
			AverageProgress int `json:"averageProgress"`
		} `json:"aggregate"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Subjects, 2)
	assert.Equal(t, "1", got.Subjects[0].ID)
	assert.Equal(t, 65, got.Subjects[0].Progress)
	assert.Equal(t, 2, got.Aggregate.TotalSubjects)
	assert.Equal(t, 77, got.Aggregate.AverageProgress)
}

func TestOutline(t *testing.T) {
	out, err := execute(t, "outline")
	require.NoError(t, err)

	assert.Contains(t, out, "○ Introduction and Fundamentals  [introduction]")
	assert.Contains(t, out, "Advanced Applications")
	assert.Contains(t, out, "15 topics in 4 categories")
}

func TestCreate(t *testing.T) {
	out, err := execute(t, "create", "--delay", "0", "--name", "Biology", "--syllabus", "cells and genetics")
	require.NoError(t, err)

	assert.Contains(t, out, creation.SuccessNotice)
	assert.Contains(t, out, "/learning-hub/")
	assert.Contains(t, out, "Core Concepts and Theory")
	assert.Contains(t, out, "0 of 19")
	assert.Contains(t, out, "3 subjects · 51% average progress · 32 of 61 total topics completed")
}

func TestCreateJSON(t *testing.T) {
	out, err := execute(t, "create", "--delay", "0", "--name", "Biology", "--syllabus", "x", "--json")
	require.NoError(t, err)

	var got struct {
		Subject struct {
			Name        string            `json:"name"`
			TotalTopics int               `json:"totalTopics"`
			MindMap     []json.RawMessage `json:"mindMap"`
		} `json:"subject"`
		Aggregate struct {
			TotalSubjects int `json:"totalSubjects"`
		} `json:"aggregate"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Biology", got.Subject.Name)
	assert.Equal(t, 19, got.Subject.TotalTopics)
	assert.Len(t, got.Subject.MindMap, 4)
	assert.Equal(t, 3, got.Aggregate.TotalSubjects)
}

func TestCreateValidation(t *testing.T) {
	_, err := execute(t, "create", "--delay", "0", "--syllabus", "x")
	require.Error(t, err)
	assert.Equal(t, creation.ValidationMessage, err.Error())
}

func TestCreateSyllabusFileMissing(t *testing.T) {
	_, err := execute(t, "create", "--name", "Biology", "--syllabus-file", "/nonexistent/syllabus.txt")
	assert.ErrorContains(t, err, "read syllabus")
}

func TestNegativeTimeoutRejected(t *testing.T) {
	_, err := execute(t, "create", "--timeout", "-1s", "--name", "a", "--syllabus", "b")
	assert.ErrorContains(t, err, "GENERATION_TIMEOUT")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "learnyst (devel)")
}

func TestMissingEnvFileIsAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	_, err := execute(t, "create", "--env-file", missing, "--delay", "0", "--name", "x", "--syllabus", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
