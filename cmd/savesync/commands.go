package savesync

import (
	"fmt"
	"os"

	"github.com/arthur-debert/savesync/internal/version"
	"github.com/arthur-debert/savesync/pkg/config"
	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/arthur-debert/savesync/pkg/gitsync"
	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/arthur-debert/savesync/pkg/output"
	"github.com/arthur-debert/savesync/pkg/paths"
	"github.com/arthur-debert/savesync/pkg/tracking"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRenderer builds a renderer for the command's stdout, with color only
// when stdout is a color terminal
func newRenderer(cmd *cobra.Command) (*output.Renderer, error) {
	w := cmd.OutOrStdout()
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !output.ColorEnabled(f)
	}
	return output.NewRenderer(w, noColor)
}

// selectEntries narrows entries to the given keys, in the order given
func selectEntries(entries []types.GameEntry, keys []string) ([]types.GameEntry, error) {
	if len(keys) == 0 {
		return entries, nil
	}

	byKey := make(map[string]types.GameEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	selected := make([]types.GameEntry, 0, len(keys))
	for _, key := range keys {
		e, ok := byKey[key]
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, MsgErrUnknownGame, key).WithDetail("game", key)
		}
		selected = append(selected, e)
	}
	return selected, nil
}

// gameKeysCompletion completes configured game keys not already on the line
func gameKeysCompletion(configPath *string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		used := make(map[string]bool, len(args))
		for _, a := range args {
			used[a] = true
		}

		var keys []string
		for _, key := range cfg.Keys() {
			if !used[key] {
				keys = append(keys, key)
			}
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}

func newTrackCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:               "track [games...]",
		Short:             MsgTrackShort,
		Long:              MsgTrackLong,
		Example:           MsgTrackExample,
		GroupID:           "core",
		ValidArgsFunction: gameKeysCompletion(configPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.track")
			logging.LogCommand(logger, cmd.Name(), args)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			entries, err := selectEntries(cfg.Entries(), args)
			if err != nil {
				return err
			}

			results := tracking.NewEngine(nil).Track(entries)

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderTrack(results); err != nil {
				return err
			}

			if failed := output.CountTrack(results).Failed; failed > 0 {
				return fmt.Errorf(MsgErrTrackFailed, failed)
			}
			return nil
		},
	}
}

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderList(cfg.Entries())
		},
	}
}

func newStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:               "status [games...]",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		GroupID:           "core",
		ValidArgsFunction: gameKeysCompletion(configPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			entries, err := selectEntries(cfg.Entries(), args)
			if err != nil {
				return err
			}

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderStatus(tracking.NewEngine(nil).Inspect(entries)); err != nil {
				return err
			}

			pending, err := gitsync.Pending(cfg.General.Repo)
			if err != nil {
				log.Debug().Err(err).Str("repo", cfg.General.Repo).Msg("Cannot check for an unfinished pull")
				return nil
			}
			if pending != nil {
				return r.RenderMessage("Warning", fmt.Sprintf(MsgPendingPull,
					pending.Branch, pending.Done+1, pending.Total, shortHash(pending.OrigHead), pending.StatePath))
			}
			return nil
		},
	}
}

func newPullCmd(configPath *string) *cobra.Command {
	var remote, branch string

	cmd := &cobra.Command{
		Use:     "pull",
		Short:   MsgPullShort,
		Long:    MsgPullLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOverrides(*configPath, map[string]interface{}{
				"general.remote": remote,
				"general.branch": branch,
			})
			if err != nil {
				return err
			}

			result, err := gitsync.NewEngine().Pull(gitsync.PullOptions{
				RepoPath: cfg.General.Repo,
				Remote:   cfg.General.Remote,
				Branch:   cfg.General.Branch,
			})
			if err != nil {
				return err
			}

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderPull(result)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", MsgFlagRemote)
	cmd.Flags().StringVar(&branch, "branch", "", MsgFlagBranch)

	return cmd
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "push",
		Short:   MsgPushShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gitsync.NewEngine().Push(); err != nil {
				return err
			}

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage("Warning", MsgPushNotImplemented)
		},
	}
}

func newGenConfigCmd(configPath *string) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				content, err := config.Template()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			path := *configPath
			if path == "" {
				path = paths.ConfigFilePath()
			}

			created, err := config.EnsureFile(path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists+"\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "savesync version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
