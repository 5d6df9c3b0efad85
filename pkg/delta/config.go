package delta

import (
	"sync/atomic"

	"github.com/clipperhouse/uax29/graphemes"
)

// unicodeMode holds the process-wide grapheme-counting strategy as an
// int32 so it can be read and written atomically from multiple goroutines.
// 1 means grapheme-cluster counting, 0 means raw byte counting.
var unicodeMode atomic.Int32

func init() {
	unicodeMode.Store(1)
}

// SetUnicodeMode sets the global support_unicode toggle. When on (the
// default), Op.Length and Op.Slice measure and cut string inserts on
// extended grapheme cluster boundaries; when off, they operate on raw
// bytes. It must be set once, before any Delta is built, and left
// unchanged for the lifetime of every Delta exchanged between peers.
func SetUnicodeMode(on bool) {
	if on {
		unicodeMode.Store(1)
	} else {
		unicodeMode.Store(0)
	}
}

// UnicodeMode reports the current support_unicode toggle.
func UnicodeMode() bool {
	return unicodeMode.Load() != 0
}

// textUnits splits s into the units counted by the current grapheme
// strategy: grapheme clusters when unicode mode is on, single bytes
// otherwise.
func textUnits(s string) []string {
	if s == "" {
		return nil
	}
	if UnicodeMode() {
		return graphemes.SegmentAllString(s)
	}
	units := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = s[i : i+1]
	}
	return units
}

// textLength returns the length of s under the current grapheme strategy.
func textLength(s string) int {
	if s == "" {
		return 0
	}
	if UnicodeMode() {
		n := 0
		for range graphemes.SegmentAllString(s) {
			n++
		}
		return n
	}
	return len(s)
}

// textSlice splits s at unit index idx (0 <= idx <= textLength(s)) into
// (head, tail), cutting at grapheme or byte boundaries per the current
// strategy.
func textSlice(s string, idx int) (string, string) {
	units := textUnits(s)
	if idx <= 0 {
		return "", s
	}
	if idx >= len(units) {
		return s, ""
	}
	head, tail := "", ""
	for i, u := range units {
		if i < idx {
			head += u
		} else {
			tail += u
		}
	}
	return head, tail
}
