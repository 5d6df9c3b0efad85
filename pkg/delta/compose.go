package delta

// Compose combines two sequential deltas a and b, applied one after the
// other, into a single equivalent delta such that
//
//	Apply(Apply(doc, a), b) == Apply(doc, Compose(a, b))
//
// Compose is total: it never fails over well-formed deltas.
//
// Example:
//
//	a := delta.New().Insert("Hello ", nil)
//	b := delta.New().Retain(6, nil).Insert("World", nil)
//	composed := delta.Compose(a, b) // insert "Hello World"
func Compose(a, b *Delta) *Delta {
	remA, remB := a.ops, b.ops
	out := New()
	for len(remA) > 0 || len(remB) > 0 {
		// B's insert always takes priority: it joins the output as-is
		// and A's current head is left pending for the next cycle.
		if len(remB) > 0 && remB[0].Kind == KindInsert {
			out.Append(remB[0])
			remB = remB[1:]
			continue
		}
		// A's delete always takes priority over whatever B currently
		// has queued: it deletes through the document regardless of
		// how B's ops happen to be chunked.
		if len(remA) > 0 && remA[0].Kind == KindDelete {
			out.Append(remA[0])
			remA = remA[1:]
			continue
		}
		if len(remA) == 0 {
			out.Append(remB[0])
			remB = remB[1:]
			continue
		}
		if len(remB) == 0 {
			out.Append(remA[0])
			remA = remA[1:]
			continue
		}
		// Neither fast path applies: remA[0] is Insert or Retain and
		// remB[0] is Retain or Delete. The two are length-matched
		// through the shared iterator.
		r := step(remA, remB, KindDelete, true)
		switch {
		case r.headA.Kind == KindRetain && r.headB.Kind == KindRetain:
			out.Append(NewRetain(r.headA.Count, ComposeAttributes(r.headA.Attributes, r.headB.Attributes, true)))
		case r.headA.Kind == KindInsert && r.headB.Kind == KindRetain:
			out.Append(NewInsert(r.headA.Insert, ComposeAttributes(r.headA.Attributes, r.headB.Attributes, false)))
		case r.headA.Kind == KindRetain && r.headB.Kind == KindDelete:
			out.Append(NewDelete(r.headA.Count))
		case r.headA.Kind == KindInsert && r.headB.Kind == KindDelete:
			// B deletes exactly what A inserted here: both vanish.
		}
		remA, remB = r.restA, r.restB
	}
	return out.Trim()
}
