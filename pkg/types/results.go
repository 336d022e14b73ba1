package types

// TrackStatus is the outcome of tracking a single entry
type TrackStatus string

const (
	// TrackSuccess means the save data was moved to Source and Destination now links to it
	TrackSuccess        TrackStatus = "success"
	// TrackAlreadyTracked means Source already existed and nothing was done
	TrackAlreadyTracked TrackStatus = "already_tracked"
	// TrackSkipped means there was nothing safe to do for this entry
	TrackSkipped        TrackStatus = "skipped"
	// TrackFailed means a filesystem step failed
	TrackFailed         TrackStatus = "failed"
)

// Common skip reasons
const (
	ReasonAlreadySymlink      = "already a symlink"
	ReasonUnsupportedPlatform = "unsupported platform"
)

// TrackResult reports what happened to one GameEntry during track
type TrackResult struct {
	Entry  GameEntry
	Status TrackStatus
	Reason string
	Err    error
}

// EntryState classifies the on-disk state of a GameEntry without changing it
type EntryState string

const (
	StateTracked     EntryState = "tracked"
	StateUntracked   EntryState = "untracked"
	StateLinkMissing EntryState = "link_missing"
	StateMissing     EntryState = "missing"
	StateConflict    EntryState = "conflict"
	StateForeignLink EntryState = "foreign_link"
	StateDisabled    EntryState = "disabled"
)

// EntryStatus pairs an entry with its inspected state
type EntryStatus struct {
	Entry      GameEntry
	State      EntryState
	LinkTarget string
}

// ReplayedCommit records one local commit replayed by a pull
type ReplayedCommit struct {
	Original string
	New      string
	Summary  string
}

// PullResult describes the outcome of a successful pull
type PullResult struct {
	Remote   string
	Branch   string
	HeadName string

	OrigHead string
	Upstream string
	NewHead  string

	Replayed []ReplayedCommit
	// Dropped lists local commits whose changes were already upstream
	Dropped  []string

	UpToDate    bool
	FastForward bool
}
