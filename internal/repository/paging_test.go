package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0, 10, 20), "zero takes the default")
	assert.Equal(t, 10, ClampLimit(-5, 10, 20), "negative takes the default")
	assert.Equal(t, 15, ClampLimit(15, 10, 20))
	assert.Equal(t, 20, ClampLimit(500, 10, 20), "over max is clamped")
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 7, NormalizePage(7))
	assert.Equal(t, maxPage, NormalizePage(922337203685477582), "huge pages are clamped")
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 3))
	assert.Equal(t, 1, TotalPages(3, 3))
	assert.Equal(t, 2, TotalPages(4, 3))
	assert.Equal(t, 4, TotalPages(10, 3))
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, PageSlice(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, PageSlice(items, 2, 3))
	assert.Equal(t, []int{7}, PageSlice(items, 3, 3), "last partial page")
	assert.Empty(t, PageSlice(items, 4, 3), "page past the end is empty, not an error")
	assert.Empty(t, PageSlice([]int{}, 1, 3))

	// A page large enough to overflow the offset product must still be
	// past-the-end, never a panic.
	assert.Empty(t, PageSlice(items, NormalizePage(922337203685477582), 10))
	assert.Empty(t, PageSlice(items, 922337203685477582, 10))
}
