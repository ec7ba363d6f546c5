package contexthub

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Unified configuration for AI coding assistants"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgGenConfigShort  = "Print the default configuration"

	// Version output
	MsgVersionFormat = "contexthub version %s\n  commit: %s\n  built:  %s\n"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "%s already exists, leaving it untouched\n"
	MsgCancelled     = "Setup cancelled by user"
	MsgUnexpected    = "Unexpected error: %v"

	// Error messages
	MsgErrResolveDir  = "failed to resolve project directory %s"
	MsgErrNotDir      = "project path %s is not a directory"
	MsgErrVerifyFails = "verification found %d problem(s)"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir        = "Project root (default: current directory)"
	MsgFlagOutput     = "Output style: auto, term or text"
	MsgFlagVerify     = "Verify existing setup"
	MsgFlagBackupOnly = "Create backup without setting up links"
	MsgFlagForceCopy  = "Force file copying instead of symlinks"
	MsgFlagNoBanner   = "Do not print the banner"
	MsgFlagMaster     = "Master file name, overriding the project configuration"
	MsgFlagFormat     = "Configuration format: toml or yaml"
	MsgFlagWrite      = "Write the configuration to the project root instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
