package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Filter change A then B: B's response lands first, A's arrives late and must
// be discarded.
func TestLatestDiscardsStaleResponse(t *testing.T) {
	var view Latest[string]
	a := view.Begin()
	b := view.Begin()

	assert.True(t, view.Commit(b, "result-B"))
	assert.False(t, view.Commit(a, "result-A"))

	got, ok := view.Value()
	assert.True(t, ok)
	assert.Equal(t, "result-B", got)
}

func TestLatestInOrderCommits(t *testing.T) {
	var view Latest[int]
	a := view.Begin()
	assert.True(t, view.Commit(a, 1))
	b := view.Begin()
	assert.True(t, view.Commit(b, 2))

	got, _ := view.Value()
	assert.Equal(t, 2, got)
}

func TestLatestEmptyValue(t *testing.T) {
	var view Latest[string]
	_, ok := view.Value()
	assert.False(t, ok)
}
