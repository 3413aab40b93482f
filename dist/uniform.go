// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Uniform is the continuous uniform distribution on [A, B].
type Uniform struct {
	A, B float64
}

var _ Continuous = Uniform{}

func (d Uniform) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d Uniform) LogPDF(x float64) float64 {
	if x < d.A || x > d.B {
		return math.Inf(-1)
	}
	return -math.Log(d.B - d.A)
}

func (d Uniform) CDF(x float64) float64 {
	switch {
	case x <= d.A:
		return 0
	case x >= d.B:
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d Uniform) Survival(x float64) float64 {
	switch {
	case x <= d.A:
		return 1
	case x >= d.B:
		return 0
	}
	return (d.B - x) / (d.B - d.A)
}

func (d Uniform) Prob(x0, x1 float64) (float64, error) {
	return rangeProbFloat(d.CDF, x0, x1)
}

func (d Uniform) InvCDF(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	switch p {
	case 0:
		return d.A, nil
	case 1:
		return d.B, nil
	}
	return d.A + p*(d.B-d.A), nil
}

func (d Uniform) Bounds() (lo, hi float64) {
	return d.A, d.B
}

func (d Uniform) Connected() bool { return true }

func (d Uniform) Mean() float64 { return (d.A + d.B) / 2 }

func (d Uniform) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}

func (d Uniform) Sampler(seed uint64) ContinuousSampler {
	return newInvContinuousSampler(seed, func(p float64) float64 {
		x, _ := d.InvCDF(p)
		return x
	})
}
