// Package probe detects what the current process may do on this machine:
// whether it runs with elevated privileges and whether the project's
// filesystem accepts symbolic links.
//
// Probing is a capability check, not a critical operation. Every failure
// degrades to "not supported" or "not privileged" so callers can fall back
// to copying.
package probe
