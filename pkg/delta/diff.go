package delta

import "znkr.io/diff"

// embedSentinel stands in for every non-string embed insert during
// diffing, so embed positions line up with text positions in the
// tokenized document. Two different embeds at the same offset are
// therefore indistinguishable from Diff's point of view until the
// equal-span walk compares their actual values — the acknowledged
// "embed false positive" edge case.
const embedSentinel = "\x00"

// tokenize projects a document's inserts into the unit sequence Diff
// compares: one token per grapheme (or byte, depending on the unicode
// toggle) of string inserts, one embedSentinel token per embed insert.
func tokenize(ops []Op) []string {
	var toks []string
	for _, op := range ops {
		if s, ok := op.Insert.(string); ok {
			toks = append(toks, textUnits(s)...)
		} else {
			toks = append(toks, embedSentinel)
		}
	}
	return toks
}

// cursor walks a single op list, handing out exactly n units of content
// at a time, slicing across op boundaries as needed.
type cursor struct {
	ops []Op
}

func newCursor(ops []Op) *cursor {
	cp := make([]Op, len(ops))
	copy(cp, ops)
	return &cursor{ops: cp}
}

func (c *cursor) peek() Op {
	return c.ops[0]
}

// take consumes exactly n units from the front of the cursor, returning
// them as consecutive ops (sliced at the boundary of the last one, if
// n falls in the middle of it).
func (c *cursor) take(n int) []Op {
	var out []Op
	for n > 0 {
		head := c.ops[0]
		hl := head.Length()
		if hl <= n {
			out = append(out, head)
			c.ops = c.ops[1:]
			n -= hl
		} else {
			h, t := Slice(head, n)
			out = append(out, h)
			c.ops = append([]Op{t}, c.ops[1:]...)
			n = 0
		}
	}
	return out
}

// Diff computes a delta d such that Apply(a, d) reproduces b, by running
// a Myers-style diff over the two documents' token sequences and lifting
// the resulting edit script back into insert/retain/delete ops. It fails
// with ErrBadDocument if a or b contains a retain or delete op.
//
// Example:
//
//	a := delta.New().Insert("Bad", delta.Attributes{"color": "red"})
//	b := delta.New().Insert("Good", delta.Attributes{"bold": true})
//	d, _ := delta.Diff(a, b) // Apply(a, d) equals b
func Diff(a, b *Delta) (*Delta, error) {
	for _, op := range a.ops {
		if op.Kind != KindInsert {
			return nil, ErrBadDocument
		}
	}
	for _, op := range b.ops {
		if op.Kind != KindInsert {
			return nil, ErrBadDocument
		}
	}

	edits := diff.EditsFunc(tokenize(a.ops), tokenize(b.ops), func(x, y string) bool { return x == y })

	out := New()
	ca, cb := newCursor(a.ops), newCursor(b.ops)
	for i := 0; i < len(edits); {
		op := edits[i].Op
		n := 0
		for i < len(edits) && edits[i].Op == op {
			n++
			i++
		}
		switch op {
		case diff.Insert:
			for _, piece := range cb.take(n) {
				out.Append(piece)
			}
		case diff.Delete:
			ca.take(n)
			out.Append(NewDelete(n))
		case diff.Match:
			diffEqualSpan(ca, cb, n, out)
		}
	}
	return out.Trim(), nil
}

// MustDiff is like Diff but panics instead of returning an error.
func MustDiff(a, b *Delta) *Delta {
	d, err := Diff(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// diffEqualSpan walks n units of content that the token-level diff
// reported as equal, re-aligning it against both documents' actual op
// boundaries via the shared iterator. Within an equal span the two
// underlying ops might still disagree (the embed-sentinel collision
// case): when that happens the mismatch is expressed as an insert of
// b's value followed by a delete of a's.
func diffEqualSpan(ca, cb *cursor, n int, out *Delta) {
	remA, remB := ca.take(n), cb.take(n)
	for len(remA) > 0 && len(remB) > 0 {
		r := step(remA, remB, -1, false)
		taken := r.headA.Length()
		if sameInsert(r.headA, r.headB) {
			out.Append(NewRetain(taken, DiffAttributes(r.headA.Attributes, r.headB.Attributes)))
		} else {
			out.Append(NewInsert(r.headB.Insert, r.headB.Attributes))
			out.Append(NewDelete(taken))
		}
		remA, remB = r.restA, r.restB
	}
}

func sameInsert(a, b Op) bool {
	as, aok := a.Insert.(string)
	bs, bok := b.Insert.(string)
	if aok && bok {
		return as == bs
	}
	if aok != bok {
		return false
	}
	return valuesEqual(a.Insert, b.Insert)
}
