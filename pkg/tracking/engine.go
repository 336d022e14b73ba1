package tracking

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/savesync/pkg/errors"
	"github.com/arthur-debert/savesync/pkg/filesystem"
	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/rs/zerolog"
)

// Engine tracks game entries against a filesystem
type Engine struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewEngine creates an engine. A nil fs uses the OS filesystem.
func NewEngine(fs types.FS) *Engine {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Engine{
		fs:     fs,
		logger: logging.GetLogger("tracking"),
	}
}

// Track processes every entry independently and returns one result per
// enabled entry, in input order. Disabled entries produce no result and no
// filesystem call.
func (e *Engine) Track(entries []types.GameEntry) []types.TrackResult {
	done := logging.LogOperationStart(e.logger, "track")
	defer done()

	supported := e.fs.SupportsSymlinks()
	results := make([]types.TrackResult, 0, len(entries))

	for _, entry := range entries {
		if !entry.Enabled {
			e.logger.Debug().Str("game", entry.Label()).Msg("Entry disabled, skipping")
			continue
		}

		var result types.TrackResult
		if !supported {
			result = skipped(entry, types.ReasonUnsupportedPlatform)
		} else {
			result = e.trackEntry(entry)
		}

		e.logResult(result)
		results = append(results, result)
	}

	return results
}

func (e *Engine) trackEntry(entry types.GameEntry) types.TrackResult {
	src, dst := entry.Source, entry.Destination

	if _, err := e.fs.Lstat(src); err == nil {
		return types.TrackResult{Entry: entry, Status: types.TrackAlreadyTracked}
	} else if !os.IsNotExist(err) {
		return failed(entry, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect source %s", src))
	}

	info, err := e.fs.Lstat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return skipped(entry, fmt.Sprintf("nothing to track at %s", dst))
		}
		return skipped(entry, fmt.Sprintf("cannot inspect %s: %v", dst, err))
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return skipped(entry, types.ReasonAlreadySymlink)
	}

	if err := e.fs.MkdirAll(filepath.Dir(src), 0755); err != nil {
		return failed(entry, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(src)))
	}

	// Rename, never copy+delete: a crash must not leave zero copies.
	if err := e.fs.Rename(dst, src); err != nil {
		return failed(entry, errors.Wrapf(err, errors.ErrFileMove, "failed to move %s to %s", dst, src))
	}

	if err := e.fs.Symlink(src, dst); err != nil {
		return failed(entry, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"save data is safe at %s but the link at %s could not be created", src, dst).
			WithDetail("source", src).
			WithDetail("destination", dst))
	}

	return types.TrackResult{Entry: entry, Status: types.TrackSuccess}
}

func (e *Engine) logResult(r types.TrackResult) {
	var event *zerolog.Event
	switch r.Status {
	case types.TrackFailed:
		event = e.logger.Error().Err(r.Err)
	case types.TrackSkipped:
		event = e.logger.Warn().Str("reason", r.Reason)
	default:
		event = e.logger.Info()
	}

	event.
		Str("game", r.Entry.Label()).
		Str("source", r.Entry.Source).
		Str("destination", r.Entry.Destination).
		Str("status", string(r.Status)).
		Msg("Tracked entry")
}

func skipped(entry types.GameEntry, reason string) types.TrackResult {
	return types.TrackResult{Entry: entry, Status: types.TrackSkipped, Reason: reason}
}

func failed(entry types.GameEntry, err error) types.TrackResult {
	return types.TrackResult{Entry: entry, Status: types.TrackFailed, Reason: err.Error(), Err: err}
}
