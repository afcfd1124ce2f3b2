// Package mat provides dense matrix and vector containers generic over real
// and complex floating-point scalars, together with the multiply and Gram
// kernels the factorization and solver layers are built on.
package mat

// Scalar is the constraint for supported element types.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// IsComplex reports whether T is a complex scalar type.
func IsComplex[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// conjugator returns the conjugation applied when forming transposes of T:
// the identity for real scalars, complex conjugation otherwise. It inspects
// the zero value once, so callers resolve it per scalar type at routine
// entry, never per element.
func conjugator[T Scalar]() func(T) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return func(v T) T {
			c := any(v).(complex64)
			return any(complex(real(c), -imag(c))).(T)
		}
	case complex128:
		return func(v T) T {
			c := any(v).(complex128)
			return any(complex(real(c), -imag(c))).(T)
		}
	default:
		return func(v T) T { return v }
	}
}

// Conjugator is the exported form of the conjugation trait, for callers
// outside this package that implement their own element loops.
func Conjugator[T Scalar]() func(T) T {
	return conjugator[T]()
}

// FromFloat lifts a real value into the scalar type T.
func FromFloat[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

// RealPart returns the real part of v as a float64.
func RealPart[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		return 0
	}
}
