package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/orbitals/internal/orbitals"
)

func TestEvalCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--n", "2", "--l", "1", "--m", "0", "--x", "0", "--y", "0", "--z", "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"psi(n=2, l=1, m=0) at (0, 0, 1): amplitude 0.0604927, density 0.00365936 (positive)\n",
		buf.String())
}

func TestEvalCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--n", "2", "--l", "1", "--m", "0", "--x", "0", "--y", "0", "--z", "-1"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string     `json:"status"`
		Data   EvalResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.InDelta(t, -0.0604927, resp.Data.Amplitude, 1e-7)
	assert.InDelta(t, 0.00365936, resp.Data.Density, 1e-8)
	assert.Equal(t, "negative", resp.Data.Sign)
	assert.InDelta(t, 1, resp.Data.R, 1e-12)
}

func TestEvalCommandInvalidQuantumNumbers(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--n", "1", "--l", "1", "--m", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, orbitals.ErrInvalidQuantumNumbers)
	assert.Empty(t, buf.String(), "failures are reported once, by main")
}

func TestEvalCommandOrigin(t *testing.T) {
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--x", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
