package tracking

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/savesync/pkg/types"
)

// Inspect classifies each entry's on-disk state. It only reads.
func (e *Engine) Inspect(entries []types.GameEntry) []types.EntryStatus {
	statuses := make([]types.EntryStatus, 0, len(entries))
	for _, entry := range entries {
		statuses = append(statuses, e.inspectEntry(entry))
	}
	return statuses
}

func (e *Engine) inspectEntry(entry types.GameEntry) types.EntryStatus {
	status := types.EntryStatus{Entry: entry}
	if !entry.Enabled {
		status.State = types.StateDisabled
		return status
	}

	_, srcErr := e.fs.Lstat(entry.Source)
	srcExists := srcErr == nil

	info, dstErr := e.fs.Lstat(entry.Destination)
	switch {
	case dstErr != nil && srcExists:
		status.State = types.StateLinkMissing
	case dstErr != nil:
		status.State = types.StateMissing
	case info.Mode()&os.ModeSymlink != 0:
		target, err := e.fs.Readlink(entry.Destination)
		status.LinkTarget = target
		if err == nil && sameTarget(entry.Destination, target, entry.Source) {
			status.State = types.StateTracked
		} else {
			status.State = types.StateForeignLink
		}
	case srcExists:
		status.State = types.StateConflict
	default:
		status.State = types.StateUntracked
	}

	return status
}

// sameTarget reports whether a link at linkPath with the given target
// points at source. Relative targets resolve against the link's directory.
func sameTarget(linkPath, target, source string) bool {
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	if !filepath.IsAbs(source) {
		if abs, err := filepath.Abs(source); err == nil {
			source = abs
		}
		if abs, err := filepath.Abs(target); err == nil {
			target = abs
		}
	}
	return filepath.Clean(target) == filepath.Clean(source)
}
