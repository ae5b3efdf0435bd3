package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"b": 2, "c": 3, "a": 1}

	var keys []string
	var vals []int
	for key, val := range IterSeq2Sorted(m) {
		keys = append(keys, key)
		vals = append(vals, val)
	}

	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{1, 2, 3}, vals)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := map[string]int{"x": 1}
	second := map[string]int{"y": 2, "z": 3}

	got := maps.Collect(IterSeq2Concat(maps.All(first), maps.All(second)))
	assert.Equal(map[string]int{"x": 1, "y": 2, "z": 3}, got)

	// Early stop must not visit later sequences.
	var seen []string
	for key := range IterSeq2Concat(IterSeq2Sorted(first), IterSeq2Sorted(second)) {
		seen = append(seen, key)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal([]string{"x", "y"}, seen)
	assert.True(slices.IsSorted(seen))
}
