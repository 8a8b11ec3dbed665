package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ badger.Logger = (*BadgerLogger)(nil)

func TestNew_Levels(t *testing.T) {
	t.Setenv("DY_LOG_LEVEL", "")
	t.Setenv("DY_LOG_FORMAT", "json")

	var buf bytes.Buffer
	l, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	l.Debug("hidden")
	l.Warn("shown")
	require.NoError(t, l.Sync())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l, err = New(Options{Writer: &buf, Verbose: true})
	require.NoError(t, err)
	l.Debug("now visible")
	require.NoError(t, l.Sync())
	assert.Contains(t, buf.String(), "now visible")
}

func TestNew_File(t *testing.T) {
	t.Setenv("DY_LOG_FORMAT", "json")
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "dy.log")
	l, err := New(Options{Writer: &buf, File: path})
	require.NoError(t, err)
	Badger(l).Warningf("value log %d", 3)
	_ = l.Sync()
	assert.Contains(t, buf.String(), "value log 3")
	assert.FileExists(t, path)
}

func TestNew_FileKeepsDebug(t *testing.T) {
	t.Setenv("DY_LOG_LEVEL", "")
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "dy.log")
	l, err := New(Options{Writer: &buf, File: path})
	require.NoError(t, err)
	l.Debug("cache miss")
	_ = l.Sync()

	assert.NotContains(t, buf.String(), "cache miss")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"cache miss"`)
}
