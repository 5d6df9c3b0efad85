package delta

import "errors"

var (
	// ErrLengthMismatch is returned by Apply when a delta's combined
	// retain and delete length exceeds the target document's length.
	ErrLengthMismatch = errors.New("delta: retain/delete length exceeds document length")

	// ErrBadDocument is returned by Lines and Diff when a delta that is
	// supposed to be a document contains a retain or delete op.
	ErrBadDocument = errors.New("delta: document must contain only insert operations")
)
