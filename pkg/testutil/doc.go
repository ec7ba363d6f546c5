// Package testutil provides utilities for testing contexthub components.
//
// Key components:
//   - file helpers (CreateFile, CreateSymlink, AssertSymlink, ...) that
//     fail the test on I/O errors
//   - Project: a temporary project root with the default configuration
//   - MockProber: a testify mock of probe.Prober
//
// Usage guidelines:
//   - packages that exercise symlinks use the real filesystem under t.TempDir()
//   - everything else may use filesystem.NewAferoFS(afero.NewMemMapFs())
//   - each test builds its own fixture, there is no shared state
package testutil
