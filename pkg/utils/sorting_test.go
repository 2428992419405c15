package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learngraph/pkg/utils"
)

func TestSortByDepthIsStable(t *testing.T) {
	type item struct {
		name  string
		depth int
	}

	items := []item{
		{"c", 2},
		{"a-first", 0},
		{"b", 1},
		{"a-second", 0},
	}

	utils.SortByDepth(items, func(i item) int { return i.depth })

	assert.Equal(t, []item{
		{"a-first", 0},
		{"a-second", 0},
		{"b", 1},
		{"c", 2},
	}, items)
}

func TestFilter(t *testing.T) {
	evens := utils.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)

	assert.Empty(t, utils.Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 }))
}
