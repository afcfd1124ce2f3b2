// Copyright 2025 The Voxfit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for the voxfit dense solvers:
// normal-equations least squares with optional Tikhonov regularization, the
// Moore–Penrose pseudo-inverse, and the underlying Cholesky primitive.
//
// # Basic Usage
//
//	m, _ := mat.MatrixFromRows([][]float64{
//		{1, 0},
//		{0, 1},
//		{1, 1},
//	})
//	b := mat.VectorFromSlice([]float64{1, 1, 3})
//
//	var x mat.Vector[float64]
//	var work mat.Matrix[float64]
//	if err := linalg.Solve(&x, m, b, &work); err != nil {
//		// errors.Is(err, linalg.ErrNotPositiveDefinite): M is
//		// rank-deficient; retry with SolveRegularized.
//	}
//
// Every routine is stateless and safe for concurrent use provided each call
// has its own output and work buffers.
package linalg
