// Package aco - tour structure utilities.
//
// These helpers operate purely on index sequences, independent of distance
// tables. Internally the solver works with open permutations (the ant's
// visit order); a closed tour is the same sequence with the start city
// repeated at the end, which is the shape Result carries and TourLength
// consumes.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CloseTour: append the closing start to a fresh copy.
//   - ValidateTour: enforce closed-tour invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given city.
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper; fresh slices out, inputs never mutated.
package aco

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}
	return nil
}

// CloseTour returns a fresh closed tour built from an open visit order:
// a copy of perm with perm[0] appended. The input is not validated; pair
// with ValidatePermutation when the sequence comes from outside.
//
// Complexity: O(n) time, O(n) space.
func CloseTour(perm []int) []int {
	if len(perm) == 0 {
		return nil
	}
	out := make([]int, len(perm)+1)
	copy(out, perm)
	out[len(perm)] = perm[0]
	return out
}

// ValidateTour enforces closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each city v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrIndexOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}
	return ValidatePermutation(tour[:n], n)
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed
// tour (len==n+1) or an open permutation (len==n); either way the output
// is closed.
//
// Pre-condition: start appears within the first n elements.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrInvalidTour
	}

	var n = len(tour)
	if tour[0] == tour[n-1] && n > 1 {
		n--
	}
	if start < 0 || start >= n {
		return nil, ErrIndexOutOfRange
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidTour
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start
	return out, nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// EqualToursModuloRotation checks equality of two closed tours under
// rotation (same direction). Assumes both inputs are closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}

	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}
