package contexthub

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/seshanpillay25/contexthub/internal/version"
	"github.com/seshanpillay25/contexthub/pkg/config"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/setup"
	"github.com/seshanpillay25/contexthub/pkg/style"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity int
	dir       string
	output    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		global     globalOptions
		verifyOnly bool
		backupOnly bool
		forceCopy  bool
		noBanner   bool
		master     string
	)

	rootCmd := &cobra.Command{
		Use:     "contexthub",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(global.dir)
			if err != nil {
				return err
			}

			var overrides map[string]interface{}
			if master != "" {
				overrides = map[string]interface{}{"files.master": master}
			}
			cfg, err := config.Load(root, overrides)
			if err != nil {
				return err
			}

			reporter, err := newReporter(cmd, global)
			if err != nil {
				return err
			}
			runner := setup.New(root, cfg, reporter)

			log.Info().
				Str("root", root).
				Bool("verify", verifyOnly).
				Bool("backupOnly", backupOnly).
				Bool("forceCopy", forceCopy).
				Msg("Running contexthub")

			switch {
			case verifyOnly:
				report := runner.VerifyExisting()
				if !report.OK() {
					return errors.Newf(errors.ErrVerifyFailed, MsgErrVerifyFails, report.Failures()).
						WithDetail("failures", report.Failures())
				}
				return nil
			case backupOnly:
				return runner.BackupOnly()
			default:
				_, err := runner.Run(setup.Options{ForceCopy: forceCopy, Banner: !noBanner})
				return err
			}
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&global.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&global.output, "output", "auto", MsgFlagOutput)

	// Mode flags
	rootCmd.Flags().BoolVar(&verifyOnly, "verify", false, MsgFlagVerify)
	rootCmd.Flags().BoolVar(&backupOnly, "backup-only", false, MsgFlagBackupOnly)
	rootCmd.Flags().BoolVar(&forceCopy, "force-copy", false, MsgFlagForceCopy)
	rootCmd.MarkFlagsMutuallyExclusive("verify", "backup-only", "force-copy")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, MsgFlagNoBanner)
	rootCmd.Flags().StringVar(&master, "master", "", MsgFlagMaster)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newGenConfigCmd(&global))

	return rootCmd
}

// resolveRoot turns the --dir flag into an absolute project root.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, MsgErrResolveDir, dir)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, MsgErrResolveDir, dir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, MsgErrNotDir, root)
	}
	return root, nil
}

func newReporter(cmd *cobra.Command, global globalOptions) (*style.Reporter, error) {
	format, err := style.ParseFormat(global.output)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --output value")
	}
	return style.NewReporter(cmd.OutOrStdout(), format), nil
}
