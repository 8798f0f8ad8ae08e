package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.js")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunPrintsResult(t *testing.T) {
	path := writeScript(t, "let arr = [4, 5];\nconsole.log(arr.length);")

	var out bytes.Buffer
	code, err := run(path, "array", 0, false, false, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, []any{"2"}, result["output"])
	assert.Equal(t, "array", result["kind"])
	state := result["visualizationState"].(map[string]any)
	assert.Len(t, state["nodes"], 2)
}

func TestRunScriptFailure(t *testing.T) {
	path := writeScript(t, "let s = [];\nthrow new Error('nope');")

	var out bytes.Buffer
	code, err := run(path, "stack", 0, true, false, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), `"error": "nope"`)
}

func TestRunRejectsInput(t *testing.T) {
	var out bytes.Buffer

	code, err := run(filepath.Join(t.TempDir(), "missing.js"), "array", 0, false, false, &out)
	assert.Error(t, err)
	assert.Equal(t, 2, code)

	code, err = run(writeScript(t, "let arr = [];"), "heap", 0, false, false, &out)
	assert.Error(t, err)
	assert.Equal(t, 2, code)
	assert.Empty(t, out.String())
}
