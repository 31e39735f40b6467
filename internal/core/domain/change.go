package domain

// ChangeType classifies a file-system change to a candidate file.
type ChangeType int

const (
	// ChangeCreated is a new candidate file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated is a modified candidate file.
	ChangeUpdated

	// ChangeDeleted is a removed or renamed-away candidate file.
	ChangeDeleted
)

// String returns the change type name.
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

// CandidateChange is a change to one candidate file.
type CandidateChange struct {
	Type ChangeType
	Path string
}
