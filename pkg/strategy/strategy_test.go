package strategy_test

import (
	"fmt"
	"testing"

	"github.com/seshanpillay25/contexthub/pkg/strategy"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestSelect_Exhaustive(t *testing.T) {
	for _, platform := range []string{"linux", "darwin", "windows"} {
		for _, force := range []bool{false, true} {
			for _, symlinks := range []bool{false, true} {
				for _, privileged := range []bool{false, true} {
					in := strategy.Input{
						ForceCopy:        force,
						Platform:         platform,
						SymlinkSupported: symlinks,
						Privileged:       privileged,
					}

					want := types.StrategyCopy
					switch {
					case force:
					case platform == "windows":
						if symlinks && privileged {
							want = types.StrategySymlink
						}
					case symlinks:
						want = types.StrategySymlink
					}

					name := fmt.Sprintf("%s/force=%v/symlinks=%v/privileged=%v", platform, force, symlinks, privileged)
					t.Run(name, func(t *testing.T) {
						assert.Equal(t, want, strategy.Select(in))
					})
				}
			}
		}
	}
}

func TestSelect_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   strategy.Input
		want types.Strategy
	}{
		{
			name: "unprivileged_linux_with_symlinks",
			in:   strategy.Input{Platform: "linux", SymlinkSupported: true},
			want: types.StrategySymlink,
		},
		{
			name: "force_copy_wins",
			in:   strategy.Input{ForceCopy: true, Platform: "linux", SymlinkSupported: true, Privileged: true},
			want: types.StrategyCopy,
		},
		{
			name: "windows_needs_admin",
			in:   strategy.Input{Platform: "windows", SymlinkSupported: true},
			want: types.StrategyCopy,
		},
		{
			name: "windows_admin",
			in:   strategy.Input{Platform: "windows", SymlinkSupported: true, Privileged: true},
			want: types.StrategySymlink,
		},
		{
			name: "no_symlink_support",
			in:   strategy.Input{Platform: "darwin", Privileged: true},
			want: types.StrategyCopy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strategy.Select(tt.in))
		})
	}
}

func TestNeedsElevationHint(t *testing.T) {
	assert.True(t, strategy.NeedsElevationHint(strategy.Input{Platform: "windows"}))
	assert.False(t, strategy.NeedsElevationHint(strategy.Input{Platform: "windows", Privileged: true}))
	assert.False(t, strategy.NeedsElevationHint(strategy.Input{Platform: "windows", ForceCopy: true}))
	assert.False(t, strategy.NeedsElevationHint(strategy.Input{Platform: "linux"}))
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "symlink", types.StrategySymlink.String())
	assert.Equal(t, "copy", types.StrategyCopy.String())
	assert.Equal(t, "Symlinks", types.StrategySymlink.Method())
	assert.Equal(t, "File copying", types.StrategyCopy.Method())
}
