// Package correlated provides correlated multivariate normal sampling on
// top of pkg/matrix's Cholesky factor, grounded on the mu + L*z
// construction used by gonum's distmv.Normal
// (_examples/other_examples/def1479c_gonum-gonum__distmv-normal.go.go).
package correlated

import (
	"math/rand"

	"github.com/atlas-desktop/montecarlo/pkg/distribution"
	"github.com/atlas-desktop/montecarlo/pkg/matrix"
	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
)

// Normals is an immutable correlated multivariate normal sampler: it
// precomputes the Cholesky factor L of a validated correlation matrix so
// that repeated Sample calls only pay for n independent draws and a
// lower-triangular multiply.
type Normals struct {
	means []float64
	l     *matrix.LowerTriangular
}

// New validates dimensions (len(means) == corr.Dim()), factorizes corr,
// and returns an immutable Normals sampler. corr must already be a
// validated correlation matrix (use matrix.NewCorrelationMatrix).
func New(means []float64, corr *matrix.CorrelationMatrix) (*Normals, error) {
	if len(means) != corr.Dim() {
		return nil, &mcerrors.DimensionMismatchError{
			Context:  "correlated.New: means vs correlation matrix",
			Expected: corr.Dim(),
			Actual:   len(means),
		}
	}
	l, err := matrix.Cholesky(corr)
	if err != nil {
		return nil, &mcerrors.InvalidCorrelationMatrixError{
			Cause:  mcerrors.CauseNotPositiveSemiDefinite,
			Detail: err.Error(),
		}
	}
	m := make([]float64, len(means))
	copy(m, means)
	return &Normals{means: m, l: l}, nil
}

// Dim returns the dimension of the sampled vector.
func (n *Normals) Dim() int { return len(n.means) }

// Sample draws n independent standard normals z, computes X = mu + L*z,
// and returns the correlated vector X. No clamping is applied to the
// underlying standard normals; numerical noise propagates untouched.
func (n *Normals) Sample(rng *rand.Rand) []float64 {
	std := distribution.Normal{Mu: 0, Sigma: 1}
	z := make([]float64, n.Dim())
	for i := range z {
		z[i] = std.Next(rng)
	}
	lz := n.l.MulVec(z)
	out := make([]float64, n.Dim())
	for i := range out {
		out[i] = n.means[i] + lz[i]
	}
	return out
}
