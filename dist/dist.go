// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist defines the capability surface a probability
// distribution must expose to be validated by the conformance
// batteries in package conform, along with a small set of reference
// distributions used to validate the harness against itself.
package dist // import "github.com/statv/go-distcheck/dist"

import "errors"

var (
	// ErrRange is returned by range probability computations when
	// the bounds are out of order.
	ErrRange = errors.New("invalid range: bounds out of order")

	// ErrProbability is returned by inverse cumulative
	// computations when the probability is outside [0, 1].
	ErrProbability = errors.New("probability out of range [0, 1]")
)

// A Discrete is a discrete statistical distribution over the
// integers.
//
// Implementations must be stateless: every method is a pure function
// of the receiver, so a single value may serve any number of checks
// in any order.
type Discrete interface {
	// PMF returns the probability mass at k. Points outside the
	// support have zero mass.
	PMF(k int) float64

	// LogPMF returns the natural logarithm of the probability
	// mass at k. This may remain finite and meaningful where PMF
	// underflows to zero, so implementations should compute it
	// directly rather than as log(PMF(k)).
	LogPMF(k int) float64

	// CDF returns P(X <= k).
	CDF(k int) float64

	// Survival returns P(X > k). This is the complement of CDF
	// but must be computed directly so that it retains precision
	// where 1-CDF(k) would round to zero.
	Survival(k int) float64

	// Prob returns P(k0 < X <= k1). It returns ErrRange if
	// k0 > k1.
	Prob(k0, k1 int) (float64, error)

	// InvCDF returns the smallest k in the support with
	// CDF(k) >= p. It returns ErrProbability if p is outside
	// [0, 1]. InvCDF(0) is the support lower bound and InvCDF(1)
	// the support upper bound.
	InvCDF(p float64) (int, error)

	// Bounds returns the inclusive support bounds. An unbounded
	// side is reported as math.MinInt or math.MaxInt.
	Bounds() (lo, hi int)

	// Connected reports whether the support has no interior gaps
	// of zero mass.
	Connected() bool

	// Mean returns the distribution mean, or NaN if undefined.
	Mean() float64

	// Variance returns the distribution variance, or NaN if
	// undefined.
	Variance() float64

	// Sampler returns a sampler for the distribution seeded with
	// seed. Samplers with equal seeds produce identical streams.
	Sampler(seed uint64) Sampler
}

// A Sampler draws values from a discrete distribution.
type Sampler interface {
	Sample() int
}

// A Continuous is a continuous statistical distribution over the
// reals. The method contracts mirror Discrete with a real-valued
// domain; Bounds may be infinite on either side.
type Continuous interface {
	// PDF returns the probability density at x.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of the density at x,
	// computed directly.
	LogPDF(x float64) float64

	// CDF returns P(X <= x).
	CDF(x float64) float64

	// Survival returns P(X > x), computed directly.
	Survival(x float64) float64

	// Prob returns P(x0 < X <= x1). It returns ErrRange if
	// x0 > x1.
	Prob(x0, x1 float64) (float64, error)

	// InvCDF returns x such that CDF(x) = p. It returns
	// ErrProbability if p is outside [0, 1].
	InvCDF(p float64) (float64, error)

	// Bounds returns the support bounds, possibly infinite.
	Bounds() (lo, hi float64)

	// Connected reports whether the support has no interior gaps
	// of zero density.
	Connected() bool

	// Mean returns the distribution mean, or NaN if undefined.
	Mean() float64

	// Variance returns the distribution variance, or NaN if
	// undefined.
	Variance() float64

	// Sampler returns a sampler for the distribution seeded with
	// seed.
	Sampler(seed uint64) ContinuousSampler
}

// A ContinuousSampler draws values from a continuous distribution.
type ContinuousSampler interface {
	Sample() float64
}
