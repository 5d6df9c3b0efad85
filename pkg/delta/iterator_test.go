package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_EqualLengthAdvancesBoth(t *testing.T) {
	a := []Op{NewRetain(3, nil), NewRetain(1, nil)}
	b := []Op{NewDelete(3)}
	r := step(a, b, -1, false)
	assert.Equal(t, 3, r.headA.Count)
	assert.Equal(t, 3, r.headB.Count)
	assert.Len(t, r.restA, 1)
	assert.Len(t, r.restB, 0)
}

func TestStep_LongerSideSliced(t *testing.T) {
	a := []Op{NewRetain(5, nil)}
	b := []Op{NewDelete(2)}
	r := step(a, b, -1, false)
	assert.Equal(t, 2, r.headA.Count)
	assert.Equal(t, 2, r.headB.Count)
	rest := r.restA
	assert.Len(t, rest, 1)
	assert.Equal(t, 3, rest[0].Count)
}

func TestStep_SkipExceptionLeavesShorterSideQueued(t *testing.T) {
	// A is longer and its Kind matches skip: both yielded whole, but B's
	// remainder is left untouched rather than advanced.
	a := []Op{NewDelete(5)}
	b := []Op{NewRetain(2, nil)}
	r := step(a, b, KindDelete, true)
	assert.Equal(t, 5, r.headA.Count)
	assert.Equal(t, 2, r.headB.Count)
	assert.Empty(t, r.restA)
	rest := r.restB
	assert.Len(t, rest, 1)
	assert.Equal(t, 2, rest[0].Count)
}

func TestStep_OneSideEmpty(t *testing.T) {
	a := []Op{}
	b := []Op{NewInsert("hi", nil)}
	r := step(a, b, -1, false)
	assert.True(t, r.headA.IsZero())
	assert.Equal(t, "hi", r.headB.Insert)
	assert.Empty(t, r.restB)
}
