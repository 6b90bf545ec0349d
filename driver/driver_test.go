/*
File    : eta/driver/driver_test.go
*/
package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempProgram(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.eta")
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunFile_SuccessReturnsZero(t *testing.T) {
	path := writeTempProgram(t, `let x = 1 + 2;`)
	assert.Equal(t, 0, RunFile(path))
}

func TestRunFile_RuntimeErrorReturnsOne(t *testing.T) {
	path := writeTempProgram(t, `undefined_name;`)
	assert.Equal(t, 1, RunFile(path))
}

func TestRunFile_ParseErrorReturnsOne(t *testing.T) {
	path := writeTempProgram(t, `let x = ;`)
	assert.Equal(t, 1, RunFile(path))
}

func TestRunFile_MissingFileReturnsOne(t *testing.T) {
	assert.Equal(t, 1, RunFile(filepath.Join(t.TempDir(), "nope.eta")))
}
