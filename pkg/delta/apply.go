package delta

// Apply applies change to doc, producing the resulting document. It
// fails with ErrLengthMismatch if change's combined retain and delete
// length exceeds doc's length — the only precondition Apply checks;
// there is no partial application.
func Apply(doc, change *Delta) (*Delta, error) {
	docLen := doc.Length(KindInsert)
	changeLen := change.Length(KindRetain, KindDelete)
	if changeLen > docLen {
		return nil, ErrLengthMismatch
	}
	return Compose(doc, change), nil
}

// MustApply is like Apply but panics instead of returning an error.
func MustApply(doc, change *Delta) *Delta {
	out, err := Apply(doc, change)
	if err != nil {
		panic(err)
	}
	return out
}
