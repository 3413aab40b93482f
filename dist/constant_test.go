// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestConstant(t *testing.T) {
	d := Constant{K: 3}
	testIntFunc(t, "PMF", d.PMF, map[int]float64{2: 0, 3: 1, 4: 0})
	testIntFunc(t, "CDF", d.CDF, map[int]float64{2: 0, 3: 1, 4: 1})
	testIntFunc(t, "Survival", d.Survival, map[int]float64{2: 1, 3: 0, 4: 0})
	testIntFunc(t, "LogPMF", d.LogPMF, map[int]float64{2: math.Inf(-1), 3: 0})

	for _, p := range []float64{0, 0.5, 1} {
		if k, err := d.InvCDF(p); err != nil || k != 3 {
			t.Errorf("want InvCDF(%v)=3, got %d, %v", p, k, err)
		}
	}
	if lo, hi := d.Bounds(); lo != 3 || hi != 3 {
		t.Errorf("want Bounds()=(3, 3), got (%d, %d)", lo, hi)
	}
	if d.Mean() != 3 || d.Variance() != 0 {
		t.Errorf("want Mean()=3, Variance()=0, got %v, %v", d.Mean(), d.Variance())
	}

	smp := d.Sampler(1)
	for i := 0; i < 10; i++ {
		if got := smp.Sample(); got != 3 {
			t.Fatalf("draw %d: want 3, got %d", i, got)
		}
	}
}
