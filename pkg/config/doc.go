// Package config holds the immutable table of files contexthub manages.
//
// Configuration is layered with koanf: the embedded defaults.toml first,
// then an optional project file (.contexthub.toml or .contexthub.yaml) at
// the project root, then programmatic overrides supplied by the caller.
// The merged result is decoded into a Config and validated before use.
package config
