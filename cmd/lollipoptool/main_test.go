package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdRenderWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.bmp")
	require.NoError(t, cmdRender([]string{"-o", out, "-size", "64", "-face", "+Y"}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCmdErrorsAreReturned(t *testing.T) {
	assert.Error(t, cmdRender([]string{"-face", "up"}))
	assert.Error(t, cmdPick([]string{"-size", "64"}))
	assert.NoError(t, cmdPick([]string{"-x", "32", "-y", "32", "-size", "64"}))
}
