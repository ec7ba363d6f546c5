package setup

import (
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/seshanpillay25/contexthub/pkg/verify"
)

// VerifyExisting checks a project without changing it.
func (r *Runner) VerifyExisting() *verify.Report {
	r.Reporter.Info("Verifying existing ContextHub setup...")
	return r.Verify()
}

// Verify scans the project and prints one line per managed file.
func (r *Runner) Verify() *verify.Report {
	out := r.Reporter
	out.Info("Verifying setup...")

	report := verify.Verify(r.FS, r.Root, r.Config)

	if !report.MasterExists {
		out.Error("Master file not found: %s", r.Config.Files.Master)
	}

	for _, status := range report.Links {
		name := status.Link.Path
		switch {
		case status.Kind == types.KindSymlink:
			out.Success("✓ %s → %s", name, status.Target)
		case status.Kind == types.KindCopy:
			out.Success("✓ %s (copy)", name)
		case status.Dangling:
			out.Error("✗ %s (broken link → %s)", name, status.Target)
		default:
			out.Error("✗ %s (missing)", name)
		}
	}

	if report.AuxExists {
		out.Success("✓ %s (exists)", r.Config.Files.Aux)
	} else {
		out.Warning("✗ %s (missing)", r.Config.Files.Aux)
	}

	if report.OK() {
		out.Success("All configurations verified successfully!")
	} else {
		out.Error("Some configurations failed verification")
	}

	logger := logging.GetLogger("setup")
	logger.Debug().Int("failures", report.Failures()).Msg("Verification reported")
	return report
}
