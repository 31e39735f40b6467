// Package tfidf builds TF-IDF vectors over a per-request vocabulary and
// scores them with cosine similarity.
package tfidf

import "math"

// Vector is a sparse term-weight vector. Indices are strictly increasing
// positions in the Vocabulary the vector was built from.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero components.
func (v Vector) Len() int {
	return len(v.Indices)
}

// IsZero returns true if the vector has no non-zero component.
func (v Vector) IsZero() bool {
	for _, x := range v.Values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Norm returns the L2 norm.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns a copy of v scaled to unit length.
// A zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	out := Vector{
		Indices: append([]int(nil), v.Indices...),
		Values:  make([]float64, len(v.Values)),
	}
	for i, x := range v.Values {
		if n > 0 {
			out.Values[i] = x / n
		} else {
			out.Values[i] = x
		}
	}
	return out
}

// Dot returns the inner product of a and b.
// Components are visited in index order so the result is reproducible.
func Dot(a, b Vector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of a and b.
// Vectors built from TF-IDF weights are non-negative, so the result is
// clamped to [0,1]; a zero vector on either side scores exactly 0.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	c := Dot(a, b) / (na * nb)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
