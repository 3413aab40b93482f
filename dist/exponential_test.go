// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestExponential(t *testing.T) {
	d := Exponential{Rate: 2}
	testFloatFunc(t, "PDF", d.PDF, map[float64]float64{
		-1:  0,
		0:   2,
		0.5: 2 * math.Exp(-1),
		1:   2 * math.Exp(-2),
	})
	testFloatFunc(t, "CDF", d.CDF, map[float64]float64{
		-1:  0,
		0:   0,
		0.5: 0.6321205588285577,
		1:   0.8646647167633873,
	})
	testFloatFunc(t, "Survival", d.Survival, map[float64]float64{
		-1: 1,
		1:  0.1353352832366127,
		// Far beyond where 1-CDF(x) rounds to zero.
		50: 3.720075976020836e-44,
	})

	for _, p := range []float64{0.1, 0.5, 0.9} {
		x, err := d.InvCDF(p)
		if err != nil {
			t.Fatalf("InvCDF(%v): unexpected error %v", p, err)
		}
		if got := d.CDF(x); !aeq(p, got) {
			t.Errorf("want CDF(InvCDF(%v))=%v, got %v", p, p, got)
		}
	}
	if x, err := d.InvCDF(1); err != nil || !math.IsInf(x, 1) {
		t.Errorf("want InvCDF(1)=+Inf, got %v, %v", x, err)
	}
	if _, err := d.InvCDF(1.5); !errors.Is(err, ErrProbability) {
		t.Errorf("want InvCDF(1.5) to fail with %v, got %v", ErrProbability, err)
	}

	if want := 0.5; !aeq(want, d.Mean()) {
		t.Errorf("want Mean()=%v, got %v", want, d.Mean())
	}
	if want := 0.25; !aeq(want, d.Variance()) {
		t.Errorf("want Variance()=%v, got %v", want, d.Variance())
	}
}

// TestExponentialReference cross-checks against an independent
// implementation of the same distribution.
func TestExponentialReference(t *testing.T) {
	d := Exponential{Rate: 1.5}
	ref := distuv.Exponential{Rate: 1.5}
	for _, x := range []float64{0.01, 0.1, 0.5, 1, 2, 5, 10} {
		if want, got := ref.CDF(x), d.CDF(x); !aeq(want, got) {
			t.Errorf("want CDF(%v)=%v, got %v", x, want, got)
		}
		if want, got := ref.Prob(x), d.PDF(x); !aeq(want, got) {
			t.Errorf("want PDF(%v)=%v, got %v", x, want, got)
		}
		if want, got := ref.Survival(x), d.Survival(x); !aeq(want, got) {
			t.Errorf("want Survival(%v)=%v, got %v", x, want, got)
		}
	}
}
