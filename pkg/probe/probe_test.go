// pkg/probe/probe_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem
// PURPOSE: Test capability probing and that it leaves no artifacts behind

package probe_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/seshanpillay25/contexthub/pkg/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNative_SupportsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink support depends on privileges on Windows")
	}

	dir := t.TempDir()
	p := probe.New(dir)

	assert.True(t, p.SupportsSymlinks())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe artifacts should be cleaned up")
}

func TestNative_MissingDirDegrades(t *testing.T) {
	p := probe.New(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.False(t, p.SupportsSymlinks())
}

func TestNative_IsPrivileged(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("euid check does not apply on Windows")
	}
	assert.Equal(t, os.Geteuid() == 0, probe.New(".").IsPrivileged())
}

func TestStatic(t *testing.T) {
	var p probe.Prober = probe.Static{Privileged: true}
	assert.True(t, p.IsPrivileged())
	assert.False(t, p.SupportsSymlinks())
}
