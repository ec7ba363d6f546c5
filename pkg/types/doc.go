// Package types defines the core types and interfaces used throughout
// contexthub: the FS abstraction every component writes through, the
// ManagedLink table entry, and the materialization Strategy and LinkKind
// enums.
package types
