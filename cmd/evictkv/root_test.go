package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Stdin(t *testing.T) {
	out, err := execute(t, "SET 2 3\nSET 3 3\nSET 4 3\nSET 5 3\nGET 2\nGET 5\nSIZE\n", "--capacity", "2")
	require.NoError(t, err)
	assert.Equal(t, "OK\nOK\nOK\nOK\n(nil)\n3\n3\n", out)
}

func TestRoot_Strict(t *testing.T) {
	out, err := execute(t, "SET a 1\nSET b 2\nSET c 3\nSIZE\nKEYS\n", "-n", "2", "--strict")
	require.NoError(t, err)
	assert.Equal(t, "OK\nOK\nOK\n2\nc\nb\n", out)
}

func TestRoot_Script(t *testing.T) {
	script := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(script, []byte("SET k v\nGET k\n"), 0o600))

	out, err := execute(t, "", script)
	require.NoError(t, err)
	assert.Equal(t, "OK\nv\n", out)
}

func TestRoot_MissingScript(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRoot_InvalidCapacity(t *testing.T) {
	_, err := execute(t, "", "--capacity", "-1")
	assert.Error(t, err)
}
