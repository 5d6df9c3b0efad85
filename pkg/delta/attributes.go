package delta

// Attributes is a mapping from format key to format value. Keys are
// opaque strings; values are opaque scalars, nested maps, or nil. A nil
// value is meaningful during composition: it marks explicit removal of a
// format rather than its absence. The empty map and a nil Attributes are
// equivalent everywhere in this package.
type Attributes map[string]any

// cloneAttributes returns a shallow copy of a, or nil if a is empty.
func cloneAttributes(a Attributes) Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// nilIfEmpty normalizes an empty map to nil so "absent" and "empty" stay
// equivalent, per the Delta invariant that absent attributes are never
// serialized as {}.
func nilIfEmpty(a Attributes) Attributes {
	if len(a) == 0 {
		return nil
	}
	return a
}

// attributesEqual reports whether a and b are structurally equal,
// treating a nil map and an empty map as the same value.
func attributesEqual(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !valuesEqual(v, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if aok && bok {
		return attributesEqual(Attributes(am), Attributes(bm))
	}
	if aok != bok {
		return false
	}
	return a == b
}

// ComposeAttributes right-biases a merge of a and b: every key present in
// b overrides a's value for that key. When keepNulls is false, any key
// whose merged value is nil is dropped from the result (used when
// composing an insert with a formatting retain, where a removed format
// should vanish rather than propagate). When keepNulls is true, nil
// entries survive so that an explicit format removal can itself compose
// forward (used when composing two retains).
func ComposeAttributes(a, b Attributes, keepNulls bool) Attributes {
	out := make(Attributes, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	if !keepNulls {
		for k, v := range out {
			if v == nil {
				delete(out, k)
			}
		}
	}
	return nilIfEmpty(out)
}

// TransformAttributes resolves a conflict between two attribute sets
// applied concurrently at the same position. With priority Right, right
// wins outright. With priority Left, only the keys of right that left
// does not already set survive — left's existing formats shadow right's
// attempt to set them, but right may still introduce brand-new keys.
func TransformAttributes(left, right Attributes, priority Priority) Attributes {
	if priority == Right {
		return cloneAttributes(right)
	}
	out := make(Attributes, len(right))
	for k, v := range right {
		if _, exists := left[k]; !exists {
			out[k] = v
		}
	}
	return nilIfEmpty(out)
}

// DiffAttributes computes the attribute edit needed to turn a into b: for
// each key in b whose value differs from a, emit b's value; for each key
// present in a but absent from b, emit an explicit nil (removal).
func DiffAttributes(a, b Attributes) Attributes {
	out := make(Attributes, len(a)+len(b))
	for k, v := range b {
		if av, ok := a[k]; !ok || !valuesEqual(av, v) {
			out[k] = v
		}
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = nil
		}
	}
	return nilIfEmpty(out)
}
