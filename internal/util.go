package internal

import "math"

const Tolerance = 1e-9

// Equality for geometry is tolerance based. Edge lengths and angles computed
// from nearly coincident points should not be trusted beyond this.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Side arithmetic. Sides 3t, 3t+1, 3t+2 make up triangle t, so walking within
// a triangle wraps every third side.

func NextSide(s int) int {
	if s%3 == 2 {
		return s - 2
	}
	return s + 1
}

func PrevSide(s int) int {
	if s%3 == 0 {
		return s + 2
	}
	return s - 1
}

func TriangleOfSide(s int) int {
	return s / 3
}

// First side of triangle t
func SideOfTriangle(t int) int {
	return 3 * t
}
