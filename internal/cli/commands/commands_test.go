package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tactics-lab/tacticsheet/internal/cli"
	"github.com/tactics-lab/tacticsheet/internal/cli/config"
)

func fixture(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "testdata", "sample_export.xml")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tactics.xlsx")

	stdout, err := execute(t, "convert", fixture(t), "--out", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, out)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConvertCommand_NoInput(t *testing.T) {
	_, err := execute(t, "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no export file")
}

func TestConvertCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "ghost.xml"),
		"--out", filepath.Join(t.TempDir(), "tactics.xlsx"))
	require.Error(t, err)
}

func TestInspectCommand_JSON(t *testing.T) {
	stdout, err := execute(t, "inspect", fixture(t), "--output", "json")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0]["Tactic"])
	assert.Equal(t, "Use caching", rows[0]["1. Title"])
	assert.Equal(t, "2", rows[1]["Tactic"])
	assert.Equal(t, "Load shedding", rows[1]["1. Title"])

	// Every row carries the index label plus all twelve family columns.
	for _, row := range rows {
		assert.Len(t, row, 13)
	}
}

func TestInspectCommand_MarkdownWhenPiped(t *testing.T) {
	stdout, err := execute(t, "inspect", fixture(t))
	require.NoError(t, err)

	// Test buffers are not terminals, so auto mode renders markdown.
	assert.Contains(t, stdout, "| Tactic |")
	assert.Contains(t, stdout, "Use caching")
}

func TestVersionCommand(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "tacticsheet"), "version output: %s", stdout)
}
