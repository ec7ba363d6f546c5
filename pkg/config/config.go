package config

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/types"
)

// Files names the fixed, non-link files contexthub manages.
type Files struct {
	Master    string `koanf:"master" toml:"master" yaml:"master"`
	BackupDir string `koanf:"backup_dir" toml:"backup_dir" yaml:"backup_dir"`
	Aux       string `koanf:"aux" toml:"aux" yaml:"aux"`
	Ignore    string `koanf:"ignore" toml:"ignore" yaml:"ignore"`
}

// Config is the table passed into the setup runner. Paths are relative to
// the project root.
type Config struct {
	Files Files               `koanf:"files" toml:"files" yaml:"files"`
	Links []types.ManagedLink `koanf:"links" toml:"links" yaml:"links"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := load("", nil)
	if err != nil {
		// The embedded defaults are part of the binary.
		panic(err)
	}
	return cfg
}

// Validate rejects tables that would make the runner write outside the
// project root or materialize the same path twice.
func (c *Config) Validate() error {
	named := map[string]string{
		"files.master":     c.Files.Master,
		"files.backup_dir": c.Files.BackupDir,
		"files.aux":        c.Files.Aux,
		"files.ignore":     c.Files.Ignore,
	}
	for key, value := range named {
		if err := validateRelative(value); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", key)
		}
	}

	if len(c.Links) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one link is required")
	}

	master := path.Clean(filepath.ToSlash(c.Files.Master))
	seen := make(map[string]bool, len(c.Links))
	for i, link := range c.Links {
		if err := validateRelative(link.Path); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid links[%d].path", i)
		}
		clean := path.Clean(filepath.ToSlash(link.Path))
		if clean == master {
			return errors.Newf(errors.ErrConfigValid, "link %q cannot be the master file", link.Path)
		}
		if seen[clean] {
			return errors.Newf(errors.ErrConfigValid, "duplicate link %q", link.Path)
		}
		seen[clean] = true
	}

	return nil
}

func validateRelative(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New(errors.ErrInvalidInput, "path is empty")
	}
	slashed := filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(slashed, "/") {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative", p)
	}
	clean := path.Clean(slashed)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.Newf(errors.ErrInvalidInput, "path %q escapes the project root", p)
	}
	return nil
}

// LinkPaths returns the link paths in table order.
func (c *Config) LinkPaths() []string {
	paths := make([]string, len(c.Links))
	for i, link := range c.Links {
		paths[i] = link.Path
	}
	return paths
}
