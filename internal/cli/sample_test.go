package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/orbitals/internal/store"
)

func TestSampleCommandRecordsRun(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	raw := filepath.Join(dir, "cloud.raw")

	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--workers", "1", "--seed", "3", "--guesses", "4000", "--raw", raw, "--db", db})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			RunID   string   `json:"runId"`
			Seed    int64    `json:"seed"`
			Outputs []string `json:"outputs"`
			Summary struct {
				Draws    int `json:"draws"`
				Accepted int `json:"accepted"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Data.RunID)
	assert.Equal(t, int64(3), resp.Data.Seed)
	assert.Equal(t, 4000, resp.Data.Summary.Draws)
	assert.Equal(t, []string{raw}, resp.Data.Outputs)
	assert.FileExists(t, raw)

	out := &bytes.Buffer{}
	runs := NewRunsCommand(&RootOptions{Format: "text"})
	runs.SetOut(out)
	runs.SetArgs([]string{"--db", db})
	require.NoError(t, runs.Execute())
	assert.Contains(t, out.String(), resp.Data.RunID)
	assert.Contains(t, out.String(), "(n=3, l=1, m=1)")
	assert.Contains(t, out.String(), "of 4,000")

	one := &bytes.Buffer{}
	runs = NewRunsCommand(&RootOptions{Format: "json"})
	runs.SetOut(one)
	runs.SetArgs([]string{"--db", db, "--id", resp.Data.RunID})
	require.NoError(t, runs.Execute())
	assert.Contains(t, one.String(), `"seed":3`)
}

func TestSampleCommandRecordsResolvedWorkers(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seed", "7", "--guesses", "2000", "--db", db})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Data struct {
			RunID   string `json:"runId"`
			Workers int    `json:"workers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.GreaterOrEqual(t, resp.Data.Workers, 1)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	run, err := st.GetRun(context.Background(), resp.Data.RunID)
	require.NoError(t, err)
	assert.Equal(t, resp.Data.Workers, run.Workers)
	assert.Equal(t, int64(7), run.Seed)
}

func TestSampleCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--n", "2", "--l", "1", "--m", "1", "--workers", "2", "--seed", "9", "--guesses", "3000"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "orbital (n=2, l=1, m=1) seed 9 workers 2\n")
	assert.Contains(t, buf.String(), "of 3,000 draws")
	assert.NotContains(t, buf.String(), "run ")
}

func TestSampleCommandInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"threshold": -2}`), 0o644))

	cmd := NewSampleCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunsCommandEmptyAndUnknown(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	buf := &bytes.Buffer{}
	cmd := NewRunsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", db})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "no runs recorded\n", buf.String())

	cmd = NewRunsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", db, "--id", "nope"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
