package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeAttributes_RightWinsOnConflict(t *testing.T) {
	a := Attributes{"bold": true, "color": "red"}
	b := Attributes{"color": "blue", "italic": true}
	out := ComposeAttributes(a, b, true)
	assert.Equal(t, Attributes{"bold": true, "color": "blue", "italic": true}, out)
}

func TestComposeAttributes_KeepNullsFalseDropsRemovals(t *testing.T) {
	a := Attributes{"bold": true}
	b := Attributes{"bold": nil}
	out := ComposeAttributes(a, b, false)
	assert.Nil(t, out)
}

func TestComposeAttributes_KeepNullsTruePreservesRemovals(t *testing.T) {
	a := Attributes{"bold": true}
	b := Attributes{"bold": nil}
	out := ComposeAttributes(a, b, true)
	assert.Contains(t, out, "bold")
	assert.Nil(t, out["bold"])
}

func TestTransformAttributes_RightPriorityWinsOutright(t *testing.T) {
	left := Attributes{"bold": true}
	right := Attributes{"bold": false, "italic": true}
	out := TransformAttributes(left, right, Right)
	assert.Equal(t, Attributes{"bold": false, "italic": true}, out)
}

func TestTransformAttributes_LeftPriorityShadowsExistingKeys(t *testing.T) {
	left := Attributes{"bold": true}
	right := Attributes{"bold": false, "italic": true}
	out := TransformAttributes(left, right, Left)
	assert.Equal(t, Attributes{"italic": true}, out)
}

func TestDiffAttributes_AddsChangesAndRemovals(t *testing.T) {
	a := Attributes{"color": "red", "bold": true}
	b := Attributes{"color": "blue", "italic": true}
	out := DiffAttributes(a, b)
	assert.Equal(t, "blue", out["color"])
	assert.Equal(t, true, out["italic"])
	assert.Nil(t, out["bold"])
	_, hasBold := out["bold"]
	assert.True(t, hasBold)
}
