package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_SplitsOnNewlineAndCarriesAttributes(t *testing.T) {
	doc := New().
		Insert("ab", Attributes{"bold": true}).
		Insert("\n", Attributes{"header": 1}).
		Insert("cd", nil)

	lines, err := Lines(doc)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, Attributes{"header": 1}, lines[0].Attributes)
	require.Len(t, lines[0].Content.Ops(), 1)
	assert.Equal(t, "ab", lines[0].Content.Ops()[0].Insert)

	assert.Nil(t, lines[1].Attributes)
	assert.Equal(t, "cd", lines[1].Content.Ops()[0].Insert)
}

func TestLines_EmbedsAccumulateIntoCurrentLine(t *testing.T) {
	img := map[string]any{"image": "src"}
	doc := New().Insert("a", nil).Insert(img, nil).Insert("\n", nil)
	lines, err := Lines(doc)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Content.Ops(), 2)
}

func TestLines_RejectsNonInsertOps(t *testing.T) {
	doc := New().Retain(3, nil)
	_, err := Lines(doc)
	assert.ErrorIs(t, err, ErrBadDocument)
}

func TestMustLines_PanicsOnBadDocument(t *testing.T) {
	doc := New().Delete(1)
	assert.Panics(t, func() {
		MustLines(doc)
	})
}
