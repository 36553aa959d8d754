// Package matrix provides correlation matrix validation and Cholesky
// factorization for the correlated-sampling path of the simulation core.
//
// Storage is backed by gonum's dense matrix types, but the
// Cholesky-Banachiewicz recurrence is hand-rolled so the caller can
// distinguish a negative radicand from a near-zero pivot, a distinction
// gonum's own mat.Cholesky.Factorize collapses into a single boolean.
package matrix

import (
	"math"

	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the numerical epsilon used for symmetry, unit-diagonal,
// and positive-semi-definiteness checks.
const Tolerance = 1e-10

// CorrelationMatrix is an immutable, validated n x n correlation matrix.
type CorrelationMatrix struct {
	n    int
	data *mat.SymDense
}

// NewCorrelationMatrix validates rows (a dense n x n slice-of-slices)
// and returns an immutable CorrelationMatrix. Checks run in order:
// square, unit diagonal, symmetry, bounds, then Cholesky (positive
// semi-definiteness).
func NewCorrelationMatrix(rows [][]float64) (*CorrelationMatrix, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, &mcerrors.InvalidCorrelationMatrixError{
				Cause:  mcerrors.CauseNonSquare,
				Detail: "row length does not match matrix dimension",
			}
		}
		_ = i
	}

	for i := 0; i < n; i++ {
		if math.Abs(rows[i][i]-1) > Tolerance {
			return nil, &mcerrors.InvalidCorrelationMatrixError{
				Cause:  mcerrors.CauseNonUnitDiagonal,
				Detail: "diagonal entry not within tolerance of 1",
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > Tolerance {
				return nil, &mcerrors.InvalidCorrelationMatrixError{
					Cause:  mcerrors.CauseAsymmetric,
					Detail: "matrix is not symmetric within tolerance",
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rows[i][j] < -1-Tolerance || rows[i][j] > 1+Tolerance {
				return nil, &mcerrors.InvalidCorrelationMatrixError{
					Cause:  mcerrors.CauseOutOfBounds,
					Detail: "off-diagonal entry outside [-1, 1]",
				}
			}
		}
	}

	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = rows[i][j]
		}
	}
	sym := mat.NewSymDense(n, flat)

	if _, err := choleskyBanachiewicz(sym, n); err != nil {
		return nil, &mcerrors.InvalidCorrelationMatrixError{
			Cause:  mcerrors.CauseNotPositiveSemiDefinite,
			Detail: err.Error(),
		}
	}

	return &CorrelationMatrix{n: n, data: sym}, nil
}

// Dim returns the matrix dimension.
func (c *CorrelationMatrix) Dim() int { return c.n }

// At returns the (i, j) entry.
func (c *CorrelationMatrix) At(i, j int) float64 { return c.data.At(i, j) }

// IsValidCorrelationMatrix reports whether rows is a valid correlation
// matrix, without returning the specific failure cause.
func IsValidCorrelationMatrix(rows [][]float64) bool {
	_, err := NewCorrelationMatrix(rows)
	return err == nil
}

// LowerTriangular is the Cholesky factor L such that L*L^T = Sigma.
type LowerTriangular struct {
	n    int
	rows [][]float64
}

// Dim returns the factor's dimension.
func (l *LowerTriangular) Dim() int { return l.n }

// At returns the (i, j) entry (zero above the diagonal).
func (l *LowerTriangular) At(i, j int) float64 {
	if j > i {
		return 0
	}
	return l.rows[i][j]
}

// MulVec computes L*z for a vector z of length n.
func (l *LowerTriangular) MulVec(z []float64) []float64 {
	out := make([]float64, l.n)
	for i := 0; i < l.n; i++ {
		sum := 0.0
		for k := 0; k <= i; k++ {
			sum += l.rows[i][k] * z[k]
		}
		out[i] = sum
	}
	return out
}

// ForwardSubstitution solves L*y = b for y, where L is lower triangular
// with a non-zero diagonal. Used to whiten a correlated vector back to
// independent standard normals (L^-1 * (x - mu)).
func ForwardSubstitution(l *LowerTriangular, b []float64) ([]float64, error) {
	if len(b) != l.n {
		return nil, &mcerrors.DimensionMismatchError{Context: "forward substitution", Expected: l.n, Actual: len(b)}
	}
	y := make([]float64, l.n)
	for i := 0; i < l.n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l.rows[i][k] * y[k]
		}
		if math.Abs(l.rows[i][i]) < Tolerance {
			return nil, errZeroDiagonal
		}
		y[i] = sum / l.rows[i][i]
	}
	return y, nil
}

// Cholesky factorizes a validated CorrelationMatrix into its lower
// triangular Cholesky factor using the classical Cholesky-Banachiewicz
// recurrence.
func Cholesky(c *CorrelationMatrix) (*LowerTriangular, error) {
	rows, err := choleskyBanachiewicz(c.data, c.n)
	if err != nil {
		return nil, err
	}
	return &LowerTriangular{n: c.n, rows: rows}, nil
}

// choleskyBanachiewicz implements: for i in 0..n, for j in 0..=i:
//
//	i==j: L[i][i] = sqrt(M[i][i] - sum_{k<i} L[i][k]^2)
//	      fails NotPositiveDefinite if radicand < -eps
//	else: L[i][j] = (M[i][j] - sum_{k<j} L[i][k]*L[j][k]) / L[j][j]
//	      fails ZeroDiagonal if L[j][j] within eps of 0
func choleskyBanachiewicz(m *mat.SymDense, n int) ([][]float64, error) {
	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			if i == j {
				for k := 0; k < j; k++ {
					sum += l[i][k] * l[i][k]
				}
				radicand := m.At(i, i) - sum
				if radicand < -Tolerance {
					return nil, errNotPositiveDefinite
				}
				if radicand < 0 {
					radicand = 0
				}
				l[i][j] = math.Sqrt(radicand)
			} else {
				for k := 0; k < j; k++ {
					sum += l[i][k] * l[j][k]
				}
				if math.Abs(l[j][j]) < Tolerance {
					return nil, errZeroDiagonal
				}
				l[i][j] = (m.At(i, j) - sum) / l[j][j]
			}
		}
	}
	return l, nil
}

type choleskyError string

func (e choleskyError) Error() string { return string(e) }

const (
	errNotPositiveDefinite = choleskyError("not positive definite: negative radicand on diagonal")
	errZeroDiagonal        = choleskyError("zero diagonal pivot encountered")
)
