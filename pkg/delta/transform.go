package delta

// Priority breaks ties between two concurrent edits during Transform:
// which side's insert stays queued behind the other's when both insert
// at the same cursor, and which side's attributes win on an overlapping
// retain.
type Priority int

const (
	// Left favors the first operand (a) of Transform.
	Left Priority = iota
	// Right favors the second operand (b) of Transform.
	Right
)

// Transform rebases b, a concurrent edit, past a so that the two
// converge regardless of application order (operational transformation's
// TP1 law):
//
//	Compose(a, Transform(a, b, priority)) and
//	Compose(b, Transform(b, a, opposite(priority)))
//
// produce the same document when applied after a and b respectively from
// a common base. Transform is total: it never fails over well-formed
// deltas.
//
// Example:
//
//	a := delta.New().Insert("A", nil)
//	b := delta.New().Insert("B", nil)
//	bPrime := delta.Transform(a, b, delta.Left) // retain 1, insert "B"
func Transform(a, b *Delta, priority Priority) *Delta {
	remA, remB := a.ops, b.ops
	out := New()
	for len(remA) > 0 || len(remB) > 0 {
		// A's insert takes priority over B unless B is also inserting
		// here and priority favors B: then B's insert is emitted first
		// and A's insert stays queued.
		if len(remA) > 0 && remA[0].Kind == KindInsert && (priority == Left || len(remB) == 0 || remB[0].Kind != KindInsert) {
			out.Append(NewRetain(remA[0].Length(), nil))
			remA = remA[1:]
			continue
		}
		if len(remB) > 0 && remB[0].Kind == KindInsert {
			out.Append(remB[0])
			remB = remB[1:]
			continue
		}
		if len(remA) == 0 {
			out.Append(remB[0])
			remB = remB[1:]
			continue
		}
		if len(remB) == 0 {
			// Whatever remains of A is invisible to b': it contributes
			// nothing observable to the transformed result.
			remA = remA[1:]
			continue
		}
		// Neither fast path applies: remA[0] and remB[0] are Retain or
		// Delete. Length-matched through the shared iterator.
		r := step(remA, remB, KindInsert, true)
		switch {
		case r.headA.Kind == KindDelete:
			// A already removed this span; B's corresponding op (retain
			// or delete) has nothing left to act on.
		case r.headB.Kind == KindDelete:
			out.Append(NewDelete(r.headB.Count))
		default: // both retain
			out.Append(NewRetain(r.headA.Count, TransformAttributes(r.headA.Attributes, r.headB.Attributes, priority)))
		}
		remA, remB = r.restA, r.restB
	}
	return out.Trim()
}
