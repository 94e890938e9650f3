package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestSideArithmetic(t *testing.T) {
	assert.Equal(t, []int{1, 2, 0, 4, 5, 3}, mapSides(NextSide))
	assert.Equal(t, []int{2, 0, 1, 5, 3, 4}, mapSides(PrevSide))
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, mapSides(TriangleOfSide))
	assert.Equal(t, 6, SideOfTriangle(2))

	for s := 0; s < 30; s++ {
		assert.Equal(t, s, PrevSide(NextSide(s)))
		assert.Equal(t, PrevSide(s), NextSide(NextSide(s)))
		assert.Equal(t, TriangleOfSide(s), TriangleOfSide(NextSide(s)))
	}
}

func mapSides(f func(int) int) []int {
	result := make([]int, 6)
	for s := range result {
		result[s] = f(s)
	}
	return result
}
