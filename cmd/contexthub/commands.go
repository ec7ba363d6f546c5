package contexthub

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/seshanpillay25/contexthub/internal/version"
	"github.com/seshanpillay25/contexthub/pkg/config"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/templates"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}

func newGenConfigCmd(global *globalOptions) *cobra.Command {
	var (
		format string
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(format)
			content, err := config.Generate(f)
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			root, err := resolveRoot(global.dir)
			if err != nil {
				return err
			}
			name := ".contexthub.toml"
			if f == config.FormatYAML {
				name = ".contexthub.yaml"
			}

			created, err := templates.EnsureFile(filesystem.NewOS(), filepath.Join(root, name), content)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
