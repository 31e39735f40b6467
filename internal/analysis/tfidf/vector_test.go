package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	a := Vector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Values: []float64{4, 7, 1}}

	assert.Equal(t, 11.0, Dot(a, b))
	assert.Equal(t, Dot(a, b), Dot(b, a))
	assert.Equal(t, 0.0, Dot(a, Vector{}))
}

func TestCosine(t *testing.T) {
	a := Vector{Indices: []int{0, 1}, Values: []float64{3, 4}}

	assert.InDelta(t, 1.0, Cosine(a, a), 1e-12)
	assert.Equal(t, 0.0, Cosine(a, Vector{}))
	assert.Equal(t, 0.0, Cosine(a, Vector{Indices: []int{2}, Values: []float64{9}}))

	b := Vector{Indices: []int{0}, Values: []float64{1}}
	assert.InDelta(t, 0.6, Cosine(a, b), 1e-12)
}

func TestNormalize(t *testing.T) {
	v := Vector{Indices: []int{1, 4}, Values: []float64{3, 4}}
	n := v.Normalize()

	assert.InDelta(t, 1.0, n.Norm(), 1e-12)
	assert.Equal(t, []float64{3, 4}, v.Values, "input must not be mutated")

	zero := Vector{Indices: []int{1}, Values: []float64{0}}
	assert.True(t, zero.Normalize().IsZero())
}
