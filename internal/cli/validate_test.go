package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execValidate(t *testing.T, rootOpts *RootOptions, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf, err
}

func TestValidateValidRoster(t *testing.T) {
	buf, err := execValidate(t, &RootOptions{Format: "text"}, writeTestRoster(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ Roster valid (2 record(s))")
}

func TestValidateValidRosterJSON(t *testing.T) {
	buf, err := execValidate(t, &RootOptions{Format: "json"}, writeTestRoster(t))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(2), data["records"])
}

func TestValidateDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
records:
  - id: 1
    name: Alice Johnson
    birthdate: "1998-05-15"
  - id: 1
    name: Bruno Keller
    birthdate: "1991-11-02"
`), 0644))

	buf, err := execValidate(t, &RootOptions{Format: "text"}, path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "✗ Roster invalid")
	assert.Contains(t, buf.String(), "E101")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roster.cue"), []byte(`
package roster

person: one: {
	name:      "Missing ID"
	birthdate: "1980-01-01"
}

person: two: {
	id:   2
	name: "Missing Birthdate"
}
`), 0644))

	buf, err := execValidate(t, &RootOptions{Format: "text"}, dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "2 error(s)")
}

func TestValidateNonExistentPath(t *testing.T) {
	buf, err := execValidate(t, &RootOptions{Format: "text"},
		filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E005")
	assert.Contains(t, buf.String(), "not found")
}
