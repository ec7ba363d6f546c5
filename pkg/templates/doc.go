// Package templates seeds the files contexthub owns but never rewrites:
// the master context file and the Aider configuration. Both are created
// only when absent, so user edits always survive a re-run.
package templates
