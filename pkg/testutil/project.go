package testutil

import (
	"path/filepath"
	"testing"

	"github.com/seshanpillay25/contexthub/pkg/config"
)

// Project is a temporary project root paired with the default config.
type Project struct {
	Root   string
	Config *config.Config
}

// NewProject creates an empty project directory. Symlinks resolve through
// EvalSymlinks so absolute link targets compare equal on systems whose
// temp dir is itself a link (macOS /var -> /private/var).
func NewProject(t *testing.T) *Project {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	return &Project{Root: root, Config: config.Default()}
}

// Path joins rel onto the project root.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// MasterPath is the absolute master file location.
func (p *Project) MasterPath() string {
	return p.Path(p.Config.Files.Master)
}

// LinkPaths returns the absolute ManagedLink locations in table order.
func (p *Project) LinkPaths() []string {
	paths := make([]string, len(p.Config.Links))
	for i, link := range p.Config.Links {
		paths[i] = p.Path(link.Path)
	}
	return paths
}

// BackupDir is the absolute backup directory location.
func (p *Project) BackupDir() string {
	return p.Path(p.Config.Files.BackupDir)
}
