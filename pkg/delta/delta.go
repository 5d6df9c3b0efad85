package delta

import "encoding/json"

// Delta is an ordered sequence of operations describing either a
// document (when every op is an insert) or a change to one. A Delta is
// always kept in canonical form: no zero-length ops, adjacent mergeable
// ops compacted, deletes hoisted after any insert that immediately
// follows them, and — once Trim has run — no trailing plain retain.
// Deltas are values: once built, the operation slice is never mutated in
// place, so a Delta is safe to share by reference across goroutines.
type Delta struct {
	ops []Op
}

// New returns an empty Delta.
func New() *Delta {
	return &Delta{}
}

// NewFromOps builds a Delta by appending each op in order, so the result
// is canonical even if ops itself was assembled out of order or contains
// zero-length entries.
//
// Example:
//
//	d := delta.NewFromOps([]delta.Op{
//	    delta.NewInsert("Hello", nil),
//	    delta.NewRetain(2, nil),
//	})
func NewFromOps(ops []Op) *Delta {
	d := New()
	for _, op := range ops {
		d.Append(op)
	}
	return d
}

// Ops returns the Delta's operations. The returned slice must not be
// mutated by the caller.
func (d *Delta) Ops() []Op {
	return d.ops
}

// Insert appends an insert op and returns the receiver, for chaining.
//
// Example:
//
//	d := delta.New().Insert("Hello", nil).Retain(5, nil)
func (d *Delta) Insert(element any, attrs Attributes) *Delta {
	d.Append(NewInsert(element, attrs))
	return d
}

// Retain appends a retain op and returns the receiver, for chaining.
func (d *Delta) Retain(count int, attrs Attributes) *Delta {
	d.Append(NewRetain(count, attrs))
	return d
}

// Delete appends a delete op and returns the receiver, for chaining.
func (d *Delta) Delete(count int) *Delta {
	d.Append(NewDelete(count))
	return d
}

// Append adds op to the end of the Delta, re-establishing the
// canonical-form invariants:
//
//   - a zero-length (or zero-value) op is a no-op;
//   - a delete immediately followed by an insert is reordered so the
//     insert joins the left neighbourhood, then the delete is re-appended
//     behind it (recursively, so the hoisted insert may merge further
//     left);
//   - otherwise op is compacted against the current last op, replacing
//     it when they merge into one, or appended alongside it when they
//     don't.
func (d *Delta) Append(op Op) *Delta {
	if op.IsZero() || op.Length() == 0 {
		return d
	}
	if len(d.ops) == 0 {
		d.ops = append(d.ops, op)
		return d
	}
	last := d.ops[len(d.ops)-1]
	if last.Kind == KindDelete && op.Kind == KindInsert {
		d.ops = d.ops[:len(d.ops)-1]
		d.Append(op)
		d.Append(last)
		return d
	}
	merged := Compact(last, op)
	if len(merged) == 1 {
		d.ops[len(d.ops)-1] = merged[0]
	} else {
		d.ops = append(d.ops, op)
	}
	return d
}

// Trim strips a trailing plain (attribute-less) retain, which carries no
// information, and returns the receiver.
func (d *Delta) Trim() *Delta {
	if n := len(d.ops); n > 0 && d.ops[n-1].Trimmable() {
		d.ops = d.ops[:n-1]
	}
	return d
}

// Length sums the lengths of the ops whose Kind is in kinds. With no
// kinds given, it sums every op's length.
func (d *Delta) Length(kinds ...Kind) int {
	var want map[Kind]bool
	if len(kinds) > 0 {
		want = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			want[k] = true
		}
	}
	total := 0
	for _, op := range d.ops {
		if want == nil || want[op.Kind] {
			total += op.Length()
		}
	}
	return total
}

// Equal reports whether d and other contain the same canonical sequence
// of operations.
func (d *Delta) Equal(other *Delta) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.ops) != len(other.ops) {
		return false
	}
	for i, op := range d.ops {
		o := other.ops[i]
		if op.Kind != o.Kind || op.Count != o.Count || !valuesEqual(op.Insert, o.Insert) || !attributesEqual(op.Attributes, o.Attributes) {
			return false
		}
	}
	return true
}

// deltaJSON accepts both wire shapes described in the external
// interfaces: a bare array of ops, or an object with an "ops" field.
type deltaJSON struct {
	Ops []Op `json:"ops"`
}

// MarshalJSON renders d as {"ops": [...]}.
func (d *Delta) MarshalJSON() ([]byte, error) {
	ops := d.ops
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(deltaJSON{Ops: ops})
}

// UnmarshalJSON parses d from either a bare array of ops or an
// {"ops": [...]} object.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var ops []Op
	if err := json.Unmarshal(data, &ops); err == nil {
		*d = *NewFromOps(ops)
		return nil
	}
	var wrapped deltaJSON
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*d = *NewFromOps(wrapped.Ops)
	return nil
}
