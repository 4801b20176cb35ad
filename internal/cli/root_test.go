package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onomast-labs/onomast/internal/cli/config"
	"github.com/onomast-labs/onomast/internal/cli/testutil"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootVersionFlag(t *testing.T) {
	out, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "onomast")
	assert.Contains(t, out, Version)
}

func TestRootUnknownCommand(t *testing.T) {
	_, err := executeRoot(t, "conjugate")
	require.Error(t, err)
}

func TestRootGenerateEndToEnd(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)

	out, err := executeRoot(t, "generate", "city", "-n", "2")
	require.NoError(t, err)

	var result struct {
		Pool  string   `json:"pool"`
		Seed  uint64   `json:"seed"`
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "city", result.Pool)
	assert.Equal(t, uint64(42), result.Seed)
	assert.Len(t, result.Items, 2)
	testutil.AssertNoANSI(t, out)
}

func TestRootFlagOverridesConfigFile(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)

	out, err := executeRoot(t, "generate", "-n", "1", "--seed", "7", "--pool", "land")
	require.NoError(t, err)

	var result struct {
		Pool string `json:"pool"`
		Seed uint64 `json:"seed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "land", result.Pool)
	assert.Equal(t, uint64(7), result.Seed)
}

func TestRootHistoryAfterGenerate(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)

	_, err := executeRoot(t, "generate", "city", "-n", "3")
	require.NoError(t, err)

	out, err := executeRoot(t, "history")
	require.NoError(t, err)

	var runs []struct {
		Status string
		Seed   uint64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", runs[0].Status)
}

func TestRootNoLedgerSkipsRecording(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)

	_, err := executeRoot(t, "generate", "city", "--no-ledger")
	require.NoError(t, err)

	_, err = executeRoot(t, "history", "--no-ledger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger is disabled")
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(t.Context())
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultLanguageFile, cfg.LanguagePath)
}

func TestGetRendererFallback(t *testing.T) {
	r := GetRenderer(t.Context())
	require.NotNil(t, r)
}
