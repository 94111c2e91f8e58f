package scatter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// kde is a bivariate Gaussian kernel-density estimate over a fixed set of
// sample points. The kernel covariance is the sample covariance scaled by
// the squared bandwidth factor, matching the scipy gaussian_kde convention.
type kde struct {
	x, y   []float64
	kernel *distmv.Normal
}

// Conditioning limits for the kernel covariance. A relative ridge of
// kernelRidge times the trace bounds the post-ridge condition number near
// 1/kernelRidge, safely inside maxKernelCond; minKernelRidge covers the
// all-points-identical case where the trace itself is zero.
const (
	maxKernelCond  = 1e9
	kernelRidge    = 1e-8
	minKernelRidge = 1e-12
)

// scottFactor is Scott's rule for two dimensions: n^(-1/(d+4)) with d = 2.
func scottFactor(n int) float64 {
	return math.Pow(float64(n), -1.0/6.0)
}

// newKDE fits a kernel to the given points. factor is the bandwidth factor
// applied to the sample covariance.
func newKDE(x, y []float64, factor float64) (*kde, error) {
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("scatter: density estimation needs at least 2 finite points, have %d", n)
	}

	data := mat.NewDense(n, 2, nil)
	for i := range x {
		data.Set(i, 0, x[i])
		data.Set(i, 1, y[i])
	}
	cov := mat.NewSymDense(2, nil)
	stat.CovarianceMatrix(cov, data, nil)

	f2 := factor * factor
	h := mat.NewSymDense(2, []float64{
		cov.At(0, 0) * f2, cov.At(0, 1) * f2,
		cov.At(0, 1) * f2, cov.At(1, 1) * f2,
	})

	// Identical or collinear samples give a singular or ill-conditioned
	// covariance. The Cholesky factorization alone does not flag exact
	// singularity reliably, so check the condition number and apply a
	// small diagonal ridge before building the kernel.
	var chol mat.Cholesky
	if !chol.Factorize(h) || chol.Cond() > maxKernelCond {
		ridge := kernelRidge * (math.Abs(h.At(0, 0)) + math.Abs(h.At(1, 1)))
		if ridge < minKernelRidge {
			ridge = minKernelRidge
		}
		h.SetSym(0, 0, h.At(0, 0)+ridge)
		h.SetSym(1, 1, h.At(1, 1)+ridge)
		if !chol.Factorize(h) || chol.Cond() > maxKernelCond {
			return nil, fmt.Errorf("scatter: singular kernel covariance for %d points", n)
		}
	}

	kernel, ok := distmv.NewNormal([]float64{0, 0}, h, nil)
	if !ok {
		return nil, fmt.Errorf("scatter: singular kernel covariance for %d points", n)
	}

	return &kde{x: x, y: y, kernel: kernel}, nil
}

// evaluate returns the estimated density at every sample point: the mean of
// the kernel over all pairwise differences (self-density). O(n^2).
func (k *kde) evaluate() []float64 {
	n := len(k.x)
	density := make([]float64, n)
	diff := make([]float64, 2)
	inv := 1 / float64(n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			diff[0] = k.x[i] - k.x[j]
			diff[1] = k.y[i] - k.y[j]
			sum += k.kernel.Prob(diff)
		}
		density[i] = sum * inv
	}
	return density
}
