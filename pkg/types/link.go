package types

// ManagedLink is one well-known AI tool configuration path that is
// materialized from the master file.
type ManagedLink struct {
	// Path is relative to the project root, slash separated.
	Path        string `koanf:"path" toml:"path" yaml:"path"`
	Description string `koanf:"description" toml:"description" yaml:"description"`
}

// LinkKind is the current on-disk materialization of a ManagedLink.
type LinkKind int

const (
	KindAbsent LinkKind = iota
	KindSymlink
	KindCopy
)

func (k LinkKind) String() string {
	switch k {
	case KindSymlink:
		return "symlink"
	case KindCopy:
		return "copy"
	default:
		return "absent"
	}
}

// Strategy selects how every ManagedLink is materialized in a run.
type Strategy int

const (
	StrategySymlink Strategy = iota
	StrategyCopy
)

func (s Strategy) String() string {
	if s == StrategyCopy {
		return "copy"
	}
	return "symlink"
}

// Method is the human name used in run summaries.
func (s Strategy) Method() string {
	if s == StrategyCopy {
		return "File copying"
	}
	return "Symlinks"
}
