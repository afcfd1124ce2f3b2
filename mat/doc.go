// Copyright 2025 The Voxfit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the public API for the dense matrix and vector
// containers used throughout voxfit.
//
// # Overview
//
// Containers are generic over real and complex floating-point scalars:
//   - Matrix[T]: dense row-major matrix
//   - Vector[T]: dense vector
//   - Scalar: float32 | float64 | complex64 | complex128
//
// Complex scalars use the conjugate transpose wherever a transpose is
// formed; real scalars use the plain transpose. The choice is resolved once
// per scalar type, never on runtime data.
//
// # Basic Usage
//
//	m, _ := mat.MatrixFromRows([][]float64{
//		{1, 0},
//		{0, 1},
//		{1, 1},
//	})
//	var g mat.Matrix[float64]
//	mat.Gram(&g, m) // g = Mᵀ·M
package mat
