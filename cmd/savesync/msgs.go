package savesync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep game saves in a git repository"
	MsgTrackShort      = "Move saves into the repository and link them back"
	MsgListShort       = "List configured games"
	MsgStatusShort     = "Show the on-disk state of each game"
	MsgPullShort       = "Fetch and rebase onto the remote branch"
	MsgPushShort       = "Push saves to the remote (not implemented)"
	MsgGenConfigShort  = "Print or write a sample configuration"
	MsgGenConfigLong   = "Print a commented sample configuration to stdout, or with -w write it to the configuration path when no file exists there."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgPushNotImplemented = "push is not implemented yet, nothing was sent"
	MsgPendingPull        = "A pull of %s stopped at step %d of %d (branch still at %s). State: %s"
	MsgConfigWritten      = "Wrote %s"
	MsgConfigExists       = "%s already exists, not overwriting"

	// Error messages
	MsgErrTrackFailed = "%d game(s) failed to track"
	MsgErrUnknownGame = "unknown game %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default $SAVESYNC_CONFIG or $XDG_CONFIG_HOME/savesync/config.toml)"
	MsgFlagWrite   = "Write the sample to the configuration path instead of stdout"
	MsgFlagRemote  = "Remote to pull from, overriding general.remote"
	MsgFlagBranch  = "Remote branch to pull, overriding general.branch"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/track-long.txt
	msgTrackLongRaw string
	MsgTrackLong    = strings.TrimSpace(msgTrackLongRaw)

	//go:embed msgs/track-example.txt
	msgTrackExampleRaw string
	MsgTrackExample    = strings.TrimRight(msgTrackExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/pull-long.txt
	msgPullLongRaw string
	MsgPullLong    = strings.TrimSpace(msgPullLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
