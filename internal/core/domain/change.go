package domain

import "time"

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeCreated indicates a new file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed-away file.
	ChangeDeleted
)

// String returns the string representation.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChange is a change event for a watched document.
type FileChange struct {
	// Path is the file that changed.
	Path string

	// Type is the kind of change.
	Type ChangeType

	// At is when the change was observed.
	At time.Time
}

// WatchResult is one re-validation triggered by watch mode.
type WatchResult struct {
	// Change is the event that triggered validation; zero for the initial run.
	Change FileChange

	// Report is the validation outcome, nil when Err is set.
	Report *ValidationReport

	// Err is set when the document could not be read or validated.
	Err error
}
