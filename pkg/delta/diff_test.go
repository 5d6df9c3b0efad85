package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_BadToGoodRoundTrips(t *testing.T) {
	a := New().Insert("Bad", Attributes{"color": "red"})
	b := New().Insert("Good", Attributes{"bold": true})

	d, err := Diff(a, b)
	require.NoError(t, err)

	out, err := Apply(a, d)
	require.NoError(t, err)
	assert.True(t, out.Equal(b))
}

func TestDiff_RejectsNonDocumentInput(t *testing.T) {
	a := New().Retain(2, nil)
	b := New().Insert("hi", nil)
	_, err := Diff(a, b)
	assert.ErrorIs(t, err, ErrBadDocument)
}

func TestDiff_IdenticalDocumentsProduceEmptyDelta(t *testing.T) {
	a := New().Insert("same text", nil)
	b := New().Insert("same text", nil)
	d, err := Diff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, len(d.Ops()))
}

func TestDiff_RoundTripsBackToTarget(t *testing.T) {
	for i := 0; i < 30; i++ {
		a := randomDocument(15)
		b := randomDocument(15)

		d, err := Diff(a, b)
		require.NoError(t, err)

		out, err := Apply(a, d)
		require.NoError(t, err)
		assert.True(t, out.Equal(b), "applying the diff to a should reproduce b")
	}
}
