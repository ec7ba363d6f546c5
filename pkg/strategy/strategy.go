// Package strategy decides how ManagedLinks are materialized.
package strategy

import (
	"github.com/seshanpillay25/contexthub/pkg/types"
)

// PlatformWindows is the GOOS value of the one platform family where
// creating symlinks requires elevation.
const PlatformWindows = "windows"

// Input carries everything the decision depends on.
type Input struct {
	ForceCopy        bool
	Platform         string
	SymlinkSupported bool
	Privileged       bool
}

// Select picks SYMLINK or COPY. It performs no I/O.
func Select(in Input) types.Strategy {
	if in.ForceCopy {
		return types.StrategyCopy
	}
	if in.Platform == PlatformWindows {
		if in.Privileged && in.SymlinkSupported {
			return types.StrategySymlink
		}
		return types.StrategyCopy
	}
	if in.SymlinkSupported {
		return types.StrategySymlink
	}
	return types.StrategyCopy
}

// NeedsElevationHint reports whether the user should be told that running
// as administrator would enable symlinks.
func NeedsElevationHint(in Input) bool {
	return in.Platform == PlatformWindows && !in.Privileged && !in.ForceCopy
}
