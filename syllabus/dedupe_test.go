package syllabus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tieubaoca/docextractor/types"
)

func TestDedupeTopics(t *testing.T) {
	got := DedupeTopics([]string{
		"Sorting - Merge",
		"Sorting - Quick",
		" Sorting - Merge ",
		"Heaps, Tries",
		"Tries",
		"",
	})

	assert.Equal(t, []string{"Sorting - Merge", "Sorting - Quick", "Heaps", "Tries"}, got)
}

func TestDedupeTopicsIsIdempotent(t *testing.T) {
	inputs := [][]string{
		nil,
		{"a", "b", "a"},
		{"x, y", "y, z", " x "},
		ExpandTopics("Sorting - Merge, Quick. Sorting - Merge, Heap. Search, Sorting - Quick."),
	}

	for _, in := range inputs {
		once := DedupeTopics(in)
		assert.Equal(t, once, DedupeTopics(once))
	}
}

func TestDedupeUnitsIsPerUnit(t *testing.T) {
	units := []types.Unit{
		{Key: "unit_1", Topics: []string{"Arrays", "Arrays", "Lists"}},
		{Key: "unit_2", Topics: []string{"Arrays", "Trees"}},
	}

	got := DedupeUnits(units)

	assert.Equal(t, []string{"Arrays", "Lists"}, got[0].Topics)
	assert.Equal(t, []string{"Arrays", "Trees"}, got[1].Topics)
	assert.Equal(t, []string{"Arrays", "Arrays", "Lists"}, units[0].Topics)
}
