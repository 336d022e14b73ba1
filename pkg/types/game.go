package types

// GameEntry is one tracked application as loaded from configuration.
// Source is the slot inside the managed repository that git tracks;
// Destination is the slot the application itself reads and writes.
type GameEntry struct {
	// Key is the identifier of the entry in the configuration's games table
	Key string

	// Name is a human-readable label used only in diagnostics
	Name string

	Source      string
	Destination string
	Enabled     bool
}

// Label returns the name used in diagnostics, falling back to the key
func (g GameEntry) Label() string {
	if g.Name != "" {
		return g.Name
	}
	return g.Key
}
