package delta

// stepResult is the pair of (head, tail) fragments step produces for
// each side of a two-cursor walk. okA/okB report whether that side had
// anything left to yield this cycle.
type stepResult struct {
	headA Op
	okA   bool
	restA []Op
	headB Op
	okB   bool
	restB []Op
}

// step is the shared advance mechanism behind every binary walk over two
// op lists (Compose, Transform, and Difference.diff's equal-span walk).
// Given the current remainders a and b, it returns the next matched
// fragment from each side plus what remains after taking it.
//
//   - If both remainders are empty, nothing is yielded on either side.
//   - If one side is empty, the other side's leading op is yielded
//     unchanged and the empty side stays empty.
//   - Otherwise the leading ops are compared by length. Equal lengths
//     yield both whole, advancing both. The longer side is sliced down
//     to the shorter one's length, and the shorter side is yielded whole
//     — except when hasSkip is true, a's op is the longer one and its
//     Kind equals skip, in which case that op is yielded whole too, and
//     b's op is *not* advanced (it stays queued, to be re-examined
//     against whatever follows the skipped op). The skip check is made
//     only when a's op is longer; a longer op on b is always sliced.
func step(a, b []Op, skip Kind, hasSkip bool) stepResult {
	if len(a) == 0 && len(b) == 0 {
		return stepResult{}
	}
	if len(a) == 0 {
		return stepResult{headB: b[0], okB: true, restB: b[1:]}
	}
	if len(b) == 0 {
		return stepResult{headA: a[0], okA: true, restA: a[1:]}
	}
	a0, b0 := a[0], b[0]
	la, lb := a0.Length(), b0.Length()
	switch {
	case la == lb:
		return stepResult{headA: a0, okA: true, restA: a[1:], headB: b0, okB: true, restB: b[1:]}
	case la > lb:
		if hasSkip && a0.Kind == skip {
			return stepResult{headA: a0, okA: true, restA: a[1:], headB: b0, okB: true, restB: b}
		}
		head, tail := Slice(a0, lb)
		restA := append([]Op{tail}, a[1:]...)
		return stepResult{headA: head, okA: true, restA: restA, headB: b0, okB: true, restB: b[1:]}
	default: // la < lb
		head, tail := Slice(b0, la)
		restB := append([]Op{tail}, b[1:]...)
		return stepResult{headA: a0, okA: true, restA: a[1:], headB: head, okB: true, restB: restB}
	}
}
