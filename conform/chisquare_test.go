// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"math"
	"strings"
	"testing"
)

func TestChiSquareAccept(t *testing.T) {
	expected := []float64{250, 250, 250, 250}
	observed := []int64{240, 260, 250, 250}
	r := ChiSquareTest(expected, observed, 0.001)
	if r.Reject {
		t.Errorf("rejected a near-perfect fit: %+v", r)
	}
	// (10^2 + 10^2) / 250
	if want := 0.8; math.Abs(r.Statistic-want) > 1e-9 {
		t.Errorf("want statistic %v, got %v", want, r.Statistic)
	}
	if r.DF != 3 {
		t.Errorf("want 3 degrees of freedom, got %d", r.DF)
	}
}

func TestChiSquareReject(t *testing.T) {
	expected := []float64{250, 250, 250, 250}
	observed := []int64{100, 400, 250, 250}
	r := ChiSquareTest(expected, observed, 0.001)
	if !r.Reject {
		t.Errorf("accepted a gross misfit: %+v", r)
	}
	// (150^2 + 150^2) / 250
	if want := 180.0; math.Abs(r.Statistic-want) > 1e-9 {
		t.Errorf("want statistic %v, got %v", want, r.Statistic)
	}
}

func TestChiSquareRescaling(t *testing.T) {
	// Unnormalized expected weights give the same decision as
	// expected counts.
	a := ChiSquareTest([]float64{0.25, 0.25, 0.25, 0.25}, []int64{240, 260, 250, 250}, 0.001)
	b := ChiSquareTest([]float64{250, 250, 250, 250}, []int64{240, 260, 250, 250}, 0.001)
	if math.Abs(a.Statistic-b.Statistic) > 1e-9 {
		t.Errorf("statistics differ under rescaling: %v != %v", a.Statistic, b.Statistic)
	}
}

func TestChiSquareDiagnostic(t *testing.T) {
	expected := []float64{250, 250}
	observed := []int64{100, 400}
	r := ChiSquareTest(expected, observed, 0.001)
	s := r.diagnostic([]string{"0", "1"}, expected, observed, 0.001)
	for _, want := range []string{"p-value", "250.00", "400", "0.001"} {
		if !strings.Contains(s, want) {
			t.Errorf("diagnostic missing %q:\n%s", want, s)
		}
	}
}

func TestChiSquareDiagnosticScalesExpected(t *testing.T) {
	// Unnormalized expected weights must render as the scaled
	// counts the decision used, not as raw probabilities.
	expected := []float64{0.5, 0.5}
	observed := []int64{100, 400}
	r := ChiSquareTest(expected, observed, 0.001)
	s := r.diagnostic([]string{"0", "1"}, expected, observed, 0.001)
	if !strings.Contains(s, "250.00") {
		t.Errorf("diagnostic missing scaled expected count 250.00:\n%s", s)
	}
	if strings.Contains(s, "0.50\t") {
		t.Errorf("diagnostic printed unscaled expected weights:\n%s", s)
	}
}
