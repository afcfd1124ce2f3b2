package mat

import "fmt"

// Mul computes dst = a·b. dst is resized to rows(a)×cols(b) and must not
// alias a or b.
func Mul[T Scalar](dst, a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return fmt.Errorf("%w: mul: (%d×%d)·(%d×%d)", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	m, k, n := a.rows, a.cols, b.cols
	dst.Resize(m, n)
	ad, bd, dd := a.data, b.data, dst.data
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += ad[i*k+l] * bd[l*n+j]
			}
			dd[i*n+j] = sum
		}
	}
	return nil
}

// MulConjTrans computes dst = aᴴ·b (plain transpose for real scalars). dst
// is resized to cols(a)×cols(b) and must not alias a or b; a and b may alias
// each other, which Gram exploits.
func MulConjTrans[T Scalar](dst, a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return fmt.Errorf("%w: mulconjtrans: (%d×%d)ᴴ·(%d×%d)", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	conj := conjugator[T]()
	m, k, n := a.cols, a.rows, b.cols
	dst.Resize(m, n)
	ad, bd, dd := a.data, b.data, dst.data
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += conj(ad[l*m+i]) * bd[l*n+j]
			}
			dd[i*n+j] = sum
		}
	}
	return nil
}

// MulTransRight computes dst = a·bᴴ (plain transpose for real scalars). dst
// is resized to rows(a)×rows(b) and must not alias a or b; a and b may alias
// each other, which GramRight exploits.
func MulTransRight[T Scalar](dst, a, b *Matrix[T]) error {
	if a.cols != b.cols {
		return fmt.Errorf("%w: multransright: (%d×%d)·(%d×%d)ᴴ", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	conj := conjugator[T]()
	m, k, n := a.rows, a.cols, b.rows
	dst.Resize(m, n)
	ad, bd, dd := a.data, b.data, dst.data
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += ad[i*k+l] * conj(bd[j*k+l])
			}
			dd[i*n+j] = sum
		}
	}
	return nil
}

// MulVec computes dst = a·x. dst is resized to rows(a) and must not alias x.
func MulVec[T Scalar](dst *Vector[T], a *Matrix[T], x *Vector[T]) error {
	if a.cols != x.Len() {
		return fmt.Errorf("%w: mulvec: (%d×%d)·(%d)", ErrDimensionMismatch, a.rows, a.cols, x.Len())
	}
	dst.Resize(a.rows)
	ad, xd, dd := a.data, x.data, dst.data
	for i := 0; i < a.rows; i++ {
		var sum T
		for j := 0; j < a.cols; j++ {
			sum += ad[i*a.cols+j] * xd[j]
		}
		dd[i] = sum
	}
	return nil
}

// MulConjTransVec computes dst = aᴴ·x (plain transpose for real scalars).
// dst is resized to cols(a) and must not alias x.
func MulConjTransVec[T Scalar](dst *Vector[T], a *Matrix[T], x *Vector[T]) error {
	if a.rows != x.Len() {
		return fmt.Errorf("%w: mulconjtransvec: (%d×%d)ᴴ·(%d)", ErrDimensionMismatch, a.rows, a.cols, x.Len())
	}
	conj := conjugator[T]()
	dst.Resize(a.cols)
	ad, xd, dd := a.data, x.data, dst.data
	for j := 0; j < a.cols; j++ {
		var sum T
		for i := 0; i < a.rows; i++ {
			sum += conj(ad[i*a.cols+j]) * xd[i]
		}
		dd[j] = sum
	}
	return nil
}

// Gram computes dst = mᴴ·m, the cols×cols Gram matrix of the normal
// equations. The lower triangle is computed and the upper mirrored by
// conjugation, so the result is exactly Hermitian. dst is resized and must
// not alias m.
func Gram[T Scalar](dst, m *Matrix[T]) {
	rows, cols := m.rows, m.cols
	conj := conjugator[T]()
	dst.Resize(cols, cols)
	md, dd := m.data, dst.data
	for i := 0; i < cols; i++ {
		for j := 0; j <= i; j++ {
			var sum T
			for k := 0; k < rows; k++ {
				sum += conj(md[k*cols+i]) * md[k*cols+j]
			}
			dd[i*cols+j] = sum
			if i != j {
				dd[j*cols+i] = conj(sum)
			}
		}
	}
}

// GramRight computes dst = m·mᴴ, the rows×rows Gram matrix. Same triangle
// and aliasing contract as Gram.
func GramRight[T Scalar](dst, m *Matrix[T]) {
	rows, cols := m.rows, m.cols
	conj := conjugator[T]()
	dst.Resize(rows, rows)
	md, dd := m.data, dst.data
	for i := 0; i < rows; i++ {
		for j := 0; j <= i; j++ {
			var sum T
			for k := 0; k < cols; k++ {
				sum += md[i*cols+k] * conj(md[j*cols+k])
			}
			dd[i*rows+j] = sum
			if i != j {
				dd[j*rows+i] = conj(sum)
			}
		}
	}
}

// ConjTranspose computes dst = mᴴ (plain transpose for real scalars). dst is
// resized to cols(m)×rows(m) and must not alias m.
func ConjTranspose[T Scalar](dst, m *Matrix[T]) {
	conj := conjugator[T]()
	dst.Resize(m.cols, m.rows)
	md, dd := m.data, dst.data
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			dd[j*m.rows+i] = conj(md[i*m.cols+j])
		}
	}
}

// AddToDiag adds lambda to every diagonal entry of m.
func AddToDiag[T Scalar](m *Matrix[T], lambda float64) {
	n := min(m.rows, m.cols)
	v := FromFloat[T](lambda)
	for i := 0; i < n; i++ {
		m.data[i*m.cols+i] += v
	}
}

// AddWeightsToDiag adds weights[i] to diagonal entry i of m. Weights are
// real-valued even for complex matrices.
func AddWeightsToDiag[T Scalar](m *Matrix[T], weights []float64) error {
	n := min(m.rows, m.cols)
	if len(weights) != n {
		return fmt.Errorf("%w: diag weights: %d weights for a %d×%d matrix", ErrDimensionMismatch, len(weights), m.rows, m.cols)
	}
	for i := 0; i < n; i++ {
		m.data[i*m.cols+i] += FromFloat[T](weights[i])
	}
	return nil
}
