// Copyright 2025 The Voxfit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import "github.com/voxfit/voxfit/internal/mat"

// Type aliases for public API

// Scalar is the constraint for supported element types.
type Scalar = mat.Scalar

// Matrix is a dense row-major matrix of T.
type Matrix[T Scalar] = mat.Matrix[T]

// Vector is a dense vector of T.
type Vector[T Scalar] = mat.Vector[T]

// ErrDimensionMismatch is returned when operand shapes are incompatible.
var ErrDimensionMismatch = mat.ErrDimensionMismatch

// NewMatrix creates a zero-initialized rows×cols matrix.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	return mat.NewMatrix[T](rows, cols)
}

// MatrixFromRows creates a matrix from row slices.
func MatrixFromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	return mat.MatrixFromRows(rows)
}

// NewVector creates a zero-initialized vector of length n.
func NewVector[T Scalar](n int) *Vector[T] {
	return mat.NewVector[T](n)
}

// VectorFromSlice creates a vector holding a copy of s.
func VectorFromSlice[T Scalar](s []T) *Vector[T] {
	return mat.VectorFromSlice(s)
}

// Mul computes dst = a·b.
func Mul[T Scalar](dst, a, b *Matrix[T]) error {
	return mat.Mul(dst, a, b)
}

// MulConjTrans computes dst = aᴴ·b.
func MulConjTrans[T Scalar](dst, a, b *Matrix[T]) error {
	return mat.MulConjTrans(dst, a, b)
}

// MulTransRight computes dst = a·bᴴ.
func MulTransRight[T Scalar](dst, a, b *Matrix[T]) error {
	return mat.MulTransRight(dst, a, b)
}

// MulVec computes dst = a·x.
func MulVec[T Scalar](dst *Vector[T], a *Matrix[T], x *Vector[T]) error {
	return mat.MulVec(dst, a, x)
}

// MulConjTransVec computes dst = aᴴ·x.
func MulConjTransVec[T Scalar](dst *Vector[T], a *Matrix[T], x *Vector[T]) error {
	return mat.MulConjTransVec(dst, a, x)
}

// Gram computes dst = mᴴ·m.
func Gram[T Scalar](dst, m *Matrix[T]) {
	mat.Gram(dst, m)
}

// GramRight computes dst = m·mᴴ.
func GramRight[T Scalar](dst, m *Matrix[T]) {
	mat.GramRight(dst, m)
}

// ConjTranspose computes dst = mᴴ.
func ConjTranspose[T Scalar](dst, m *Matrix[T]) {
	mat.ConjTranspose(dst, m)
}

// AddToDiag adds lambda to every diagonal entry of m.
func AddToDiag[T Scalar](m *Matrix[T], lambda float64) {
	mat.AddToDiag(m, lambda)
}

// AddWeightsToDiag adds weights[i] to diagonal entry i of m.
func AddWeightsToDiag[T Scalar](m *Matrix[T], weights []float64) error {
	return mat.AddWeightsToDiag(m, weights)
}

// IsComplex reports whether T is a complex scalar type.
func IsComplex[T Scalar]() bool {
	return mat.IsComplex[T]()
}

// FromFloat lifts a real value into the scalar type T.
func FromFloat[T Scalar](v float64) T {
	return mat.FromFloat[T](v)
}

// RealPart returns the real part of v as a float64.
func RealPart[T Scalar](v T) float64 {
	return mat.RealPart(v)
}
