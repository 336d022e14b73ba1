// Package tracking turns an application's save location into a symlink to
// the copy kept inside the managed repository.
//
// For each enabled entry whose source does not exist yet, the destination
// is renamed to the source and a symlink is left at the destination. The
// two steps are each atomic; the only failure window between them leaves
// the data at the source with the link missing, which is reported and can
// be repaired by hand. Destinations that are already symlinks are never
// touched, and entries whose source exists are considered tracked.
package tracking
