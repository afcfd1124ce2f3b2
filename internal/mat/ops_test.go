package mat

import (
	"errors"
	"testing"
)

func mustMatrix[T Scalar](t *testing.T, rows [][]T) *Matrix[T] {
	t.Helper()
	m, err := MatrixFromRows(rows)
	if err != nil {
		t.Fatalf("MatrixFromRows failed: %v", err)
	}
	return m
}

func TestMul(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := mustMatrix(t, [][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	var dst Matrix[float64]
	if err := Mul(&dst, a, b); err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if !float64SliceEqual(dst.Data(), []float64{58, 64, 139, 154}) {
		t.Errorf("Mul result: %v", dst.Data())
	}

	if err := Mul(&dst, a, a); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for (2×3)·(2×3), got %v", err)
	}
}

func TestMulConjTrans(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		a := mustMatrix(t, [][]float64{
			{1, 2},
			{3, 4},
			{5, 6},
		})
		b := mustMatrix(t, [][]float64{
			{1, 0},
			{0, 1},
			{1, 1},
		})

		var dst Matrix[float64]
		if err := MulConjTrans(&dst, a, b); err != nil {
			t.Fatalf("MulConjTrans failed: %v", err)
		}
		if !float64SliceEqual(dst.Data(), []float64{6, 8, 8, 10}) {
			t.Errorf("aᵀb = %v, expected [6 8 8 10]", dst.Data())
		}

		short := mustMatrix(t, [][]float64{{1, 2}})
		if err := MulConjTrans(&dst, a, short); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("expected ErrDimensionMismatch, got %v", err)
		}
	})

	t.Run("Complex", func(t *testing.T) {
		a := mustMatrix(t, [][]complex128{
			{1i},
			{1},
		})
		b := mustMatrix(t, [][]complex128{
			{1},
			{1i},
		})

		var dst Matrix[complex128]
		if err := MulConjTrans(&dst, a, b); err != nil {
			t.Fatalf("MulConjTrans failed: %v", err)
		}
		// aᴴb = conj(i)·1 + conj(1)·i = 0; the plain transpose would give 2i.
		if dst.At(0, 0) != 0 {
			t.Errorf("aᴴb = %v, expected 0", dst.At(0, 0))
		}
	})

	t.Run("SelfProductMatchesGram", func(t *testing.T) {
		m := mustMatrix(t, [][]complex128{
			{1, 1i},
			{1i, 2},
			{0, 1},
		})

		var full, gram Matrix[complex128]
		if err := MulConjTrans(&full, m, m); err != nil {
			t.Fatalf("MulConjTrans failed: %v", err)
		}
		Gram(&gram, m)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if full.At(i, j) != gram.At(i, j) {
					t.Errorf("mismatch at (%d,%d): %v vs %v", i, j, full.At(i, j), gram.At(i, j))
				}
			}
		}
	})
}

func TestMulTransRight(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		a := mustMatrix(t, [][]float64{
			{1, 2, 3},
			{0, 1, 1},
		})
		b := mustMatrix(t, [][]float64{
			{1, 0, 1},
			{2, 1, 0},
		})

		var dst Matrix[float64]
		if err := MulTransRight(&dst, a, b); err != nil {
			t.Fatalf("MulTransRight failed: %v", err)
		}
		if !float64SliceEqual(dst.Data(), []float64{4, 4, 1, 1}) {
			t.Errorf("abᵀ = %v, expected [4 4 1 1]", dst.Data())
		}

		narrow := mustMatrix(t, [][]float64{{1, 2}})
		if err := MulTransRight(&dst, a, narrow); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("expected ErrDimensionMismatch, got %v", err)
		}
	})

	t.Run("SelfProductMatchesGramRight", func(t *testing.T) {
		m := mustMatrix(t, [][]complex128{
			{1, 1i},
			{1i, 2},
		})

		var full, gram Matrix[complex128]
		if err := MulTransRight(&full, m, m); err != nil {
			t.Fatalf("MulTransRight failed: %v", err)
		}
		GramRight(&gram, m)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if full.At(i, j) != gram.At(i, j) {
					t.Errorf("mismatch at (%d,%d): %v vs %v", i, j, full.At(i, j), gram.At(i, j))
				}
			}
		}
	})
}

func TestMulVec(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
	})
	x := VectorFromSlice([]float64{2, 3})

	var dst Vector[float64]
	if err := MulVec(&dst, a, x); err != nil {
		t.Fatalf("MulVec failed: %v", err)
	}
	if !float64SliceEqual(dst.Data(), []float64{2, 3, 5}) {
		t.Errorf("MulVec result: %v", dst.Data())
	}

	if err := MulVec(&dst, a, VectorFromSlice([]float64{1, 2, 3})); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMulConjTransVec(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		m := mustMatrix(t, [][]float64{
			{1, 0},
			{0, 1},
			{1, 1},
		})
		b := VectorFromSlice([]float64{1, 1, 3})

		var dst Vector[float64]
		if err := MulConjTransVec(&dst, m, b); err != nil {
			t.Fatalf("MulConjTransVec failed: %v", err)
		}
		if !float64SliceEqual(dst.Data(), []float64{4, 4}) {
			t.Errorf("Mᵀb = %v, expected [4 4]", dst.Data())
		}

		if err := MulConjTransVec(&dst, m, VectorFromSlice([]float64{1, 2})); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("expected ErrDimensionMismatch, got %v", err)
		}
	})

	t.Run("Complex", func(t *testing.T) {
		m := mustMatrix(t, [][]complex128{
			{1},
			{1i},
		})
		b := VectorFromSlice([]complex128{1, 1i})

		var dst Vector[complex128]
		if err := MulConjTransVec(&dst, m, b); err != nil {
			t.Fatalf("MulConjTransVec failed: %v", err)
		}
		// Mᴴb = conj(1)·1 + conj(i)·i = 2; the plain transpose would give 0.
		if dst.Len() != 1 || dst.At(0) != 2+0i {
			t.Errorf("Mᴴb = %v, expected [2]", dst.Data())
		}
	})
}

func TestGram(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		m := mustMatrix(t, [][]float64{
			{1, 0},
			{0, 1},
			{1, 1},
		})

		var g Matrix[float64]
		Gram(&g, m)
		if !float64SliceEqual(g.Data(), []float64{2, 1, 1, 2}) {
			t.Errorf("MᵀM = %v, expected [2 1 1 2]", g.Data())
		}
	})

	t.Run("ComplexHermitian", func(t *testing.T) {
		m := mustMatrix(t, [][]complex128{
			{1, 1i},
			{1i, 2},
		})

		var g Matrix[complex128]
		Gram(&g, m)
		if g.Rows() != 2 || g.Cols() != 2 {
			t.Fatalf("Gram shape %d×%d", g.Rows(), g.Cols())
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				got := g.At(i, j)
				want := conjugator[complex128]()(g.At(j, i))
				if got != want {
					t.Errorf("Gram not Hermitian at (%d,%d): %v vs %v", i, j, got, want)
				}
			}
		}
		// (MᴴM)[0][0] = |1|² + |i|² = 2.
		if g.At(0, 0) != 2+0i {
			t.Errorf("(MᴴM)[0][0] = %v, expected 2", g.At(0, 0))
		}
	})

	t.Run("ComplexSingularUnderPlainTranspose", func(t *testing.T) {
		// MᵀM for this matrix is 1 + i² = 0, but MᴴM is 2.
		m := mustMatrix(t, [][]complex128{
			{1},
			{1i},
		})

		var g Matrix[complex128]
		Gram(&g, m)
		if g.At(0, 0) != 2+0i {
			t.Errorf("MᴴM = %v, expected 2", g.At(0, 0))
		}
	})
}

func TestGramRight(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{1, 2, 3},
		{0, 1, 1},
	})

	var g Matrix[float64]
	GramRight(&g, m)
	if !float64SliceEqual(g.Data(), []float64{14, 5, 5, 2}) {
		t.Errorf("MMᵀ = %v, expected [14 5 5 2]", g.Data())
	}
}

func TestConjTranspose(t *testing.T) {
	m := mustMatrix(t, [][]complex128{
		{1 + 1i, 2},
		{3, 4 - 2i},
		{0, 5i},
	})

	var mt Matrix[complex128]
	ConjTranspose(&mt, m)
	if mt.Rows() != 2 || mt.Cols() != 3 {
		t.Fatalf("transpose shape %d×%d", mt.Rows(), mt.Cols())
	}
	if mt.At(0, 0) != 1-1i || mt.At(1, 1) != 4+2i || mt.At(1, 2) != -5i {
		t.Errorf("unexpected conjugate transpose: %v", mt.Data())
	}
}

func TestAddToDiag(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{1, 2},
		{3, 4},
	})
	AddToDiag(m, 0.5)
	if !float64SliceEqual(m.Data(), []float64{1.5, 2, 3, 4.5}) {
		t.Errorf("AddToDiag result: %v", m.Data())
	}
}

func TestAddWeightsToDiag(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	if err := AddWeightsToDiag(m, []float64{1, 3}); err != nil {
		t.Fatalf("AddWeightsToDiag failed: %v", err)
	}
	if !float64SliceEqual(m.Data(), []float64{2, 0, 0, 4}) {
		t.Errorf("AddWeightsToDiag result: %v", m.Data())
	}

	if err := AddWeightsToDiag(m, []float64{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}
