package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrMatrixShape indicates a value slice that does not form a square matrix.
var ErrMatrixShape = errors.New("matrix values do not match size")

// Vector is a sparse feature vector. Indices are strictly ascending.
type Vector struct {
	Indices []int
	Values  []float64
}

// DenseVector builds a Vector covering every dimension of values.
func DenseVector(values []float64) Vector {
	indices := make([]int, len(values))
	for i := range values {
		indices[i] = i
	}
	return Vector{Indices: indices, Values: values}
}

// Norm returns the Euclidean magnitude of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors.
func Dot(a, b Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// CosineSimilarity returns dot(a, b) / (|a| * |b|), or 0 when either magnitude is 0.
func CosineSimilarity(a, b Vector) float64 {
	return cosine(a, b, a.Norm(), b.Norm())
}

func cosine(a, b Vector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return Dot(a, b) / (normA * normB)
}

// Matrix is a dense square matrix stored row-major.
type Matrix struct {
	size   int
	values []float64
}

// NewMatrix wraps row-major values of a size x size matrix.
func NewMatrix(size int, values []float64) (*Matrix, error) {
	if size < 0 || len(values) != size*size {
		return nil, fmt.Errorf("%w: size %d, %d values", ErrMatrixShape, size, len(values))
	}
	return &Matrix{size: size, values: values}, nil
}

// BuildSimilarityMatrix computes pairwise cosine similarity. Only the upper
// triangle is computed; the lower triangle mirrors it, so the result is exactly symmetric.
func BuildSimilarityMatrix(vectors []Vector) *Matrix {
	n := len(vectors)
	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	values := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sim := cosine(vectors[i], vectors[j], norms[i], norms[j])
			values[i*n+j] = sim
			values[j*n+i] = sim
		}
	}

	return &Matrix{size: n, values: values}
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int { return m.size }

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float64 { return m.values[i*m.size+j] }

// Row returns a read-only view of row i.
func (m *Matrix) Row(i int) []float64 {
	start := i * m.size
	return m.values[start : start+m.size : start+m.size]
}

// Values returns a copy of the row-major values.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}
