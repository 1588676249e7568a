package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageLimit(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		page, limit := ParsePageLimit("", "")
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("Malformed", func(t *testing.T) {
		page, limit := ParsePageLimit("abc", "-3")
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("Valid", func(t *testing.T) {
		page, limit := ParsePageLimit("4", "25")
		assert.Equal(t, 4, page)
		assert.Equal(t, 25, limit)
	})

	t.Run("NoUpperBoundOnLimit", func(t *testing.T) {
		_, limit := ParsePageLimit("1", "100000")
		assert.Equal(t, 100000, limit)
	})
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 60, Offset(4, 20))
}

// Tweet listings round the page count while user listings ceil it; the
// difference is externally observable and must not be unified.
func TestPaginationAsymmetry(t *testing.T) {
	t.Run("TweetRoundsDown", func(t *testing.T) {
		p := NewTweetPagination(24, 1, 10)
		assert.Equal(t, 2, p.TotalPages)
		assert.True(t, p.HasMore)
	})

	t.Run("TweetRoundsUp", func(t *testing.T) {
		p := NewTweetPagination(25, 1, 10)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("UserAlwaysCeils", func(t *testing.T) {
		p := NewUserPagination(24, 1, 10)
		assert.Equal(t, 3, p.TotalPages)

		p = NewUserPagination(21, 1, 10)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("HasMoreOnLastPage", func(t *testing.T) {
		p := NewTweetPagination(30, 3, 10)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasMore)
		assert.Equal(t, 3, p.CurrentPage)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		p := NewUserPagination(0, 1, 10)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasMore)
		assert.Equal(t, int64(0), p.Total)
	})
}
