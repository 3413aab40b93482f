// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixture

import (
	"math"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*Fixture, error) {
	t.Helper()
	p, err := properties.LoadString(src)
	require.NoError(t, err)
	return Loader{}.Parse("test", p)
}

func TestParse(t *testing.T) {
	f, err := parse(t, `
parameters = 10 0.5
mean = 5
variance = 2.5
lower = 0
upper = 10
connected = true
tolerance = 1e-9
tolerance.hp = 1e-25
cdf.points = 0, 5, 10
cdf.values = 0.001, 0.62, 1.0
pmf.points = 0, 5
pmf.values = 0.001, 0.24
logpmf.values = -6.9, -1.4
sf.points = 5
sf.values = 0.38
cdf.hp.points = 0
cdf.hp.values = 1e-30
sf.hp.points = 9
sf.hp.values = 1e-30
icdf.values = 0.001, 0.5
ipmf.values = 1, 5
disable.sample = true
`)
	require.NoError(t, err)

	assert.Equal(t, "test", f.Name)
	assert.Equal(t, []float64{10, 0.5}, f.Parameters)
	assert.Equal(t, 5.0, f.Mean)
	assert.Equal(t, 2.5, f.Variance)
	assert.Equal(t, 0.0, f.Lower)
	assert.Equal(t, 10.0, f.Upper)
	assert.True(t, f.Connected)
	assert.Equal(t, 1e-9, f.Tol)
	assert.Equal(t, 1e-25, f.TolHP)
	assert.Equal(t, []float64{0, 5, 10}, f.CDFPoints)
	assert.Equal(t, []float64{0.001, 0.62, 1.0}, f.CDFValues)
	assert.Equal(t, []float64{0, 5}, f.PMFPoints)
	assert.Equal(t, []float64{0.001, 0.24}, f.PMFValues)
	assert.Equal(t, []float64{-6.9, -1.4}, f.LogPMFValues)
	assert.Equal(t, []float64{5}, f.SFPoints)
	assert.Equal(t, []float64{0.38}, f.SFValues)
	assert.Equal(t, []float64{0}, f.CDFHPPoints)
	assert.Equal(t, []float64{1e-30}, f.CDFHPValues)
	assert.Equal(t, []float64{9}, f.SFHPPoints)
	assert.Equal(t, []float64{1e-30}, f.SFHPValues)
	assert.Equal(t, []float64{0.001, 0.5}, f.InvP)
	assert.Equal(t, []float64{1, 5}, f.InvX)
	assert.True(t, f.DisableSample)
	assert.False(t, f.DisablePMF)
	assert.False(t, f.DisableCDF)
	assert.False(t, f.DisableCDFInverse)
}

func TestParseDefaults(t *testing.T) {
	f, err := parse(t, `
parameters = 1
mean = 1
variance = 1
cdf.points = 0, 1
cdf.values = 0.25, 0.75
pmf.values = 0.25, 0.5
`)
	require.NoError(t, err)

	assert.True(t, math.IsInf(f.Lower, -1), "lower defaults to -Infinity")
	assert.True(t, math.IsInf(f.Upper, 1), "upper defaults to +Infinity")
	assert.True(t, f.Connected)
	assert.Equal(t, DefaultTol, f.Tol)
	assert.Equal(t, DefaultTolHP, f.TolHP)

	// pmf.points defaults to cdf.points, logpmf to log(pmf).
	assert.Equal(t, f.CDFPoints, f.PMFPoints)
	assert.Equal(t, []float64{math.Log(0.25), math.Log(0.5)}, f.LogPMFValues)

	// sf defaults to the cdf complement.
	assert.Equal(t, f.CDFPoints, f.SFPoints)
	assert.Equal(t, []float64{0.75, 0.25}, f.SFValues)

	assert.Empty(t, f.CDFHPPoints)
	assert.Empty(t, f.InvP)
}

func TestParseSFValuesOnly(t *testing.T) {
	// sf.values alone pairs with the cdf points.
	f, err := parse(t, `
parameters = 1
mean = 1
variance = 1
cdf.points = 0, 1
cdf.values = 0.25, 0.75
sf.values = 0.75, 0.25
`)
	require.NoError(t, err)
	assert.Equal(t, f.CDFPoints, f.SFPoints)
	assert.Equal(t, []float64{0.75, 0.25}, f.SFValues)
}

func TestParseSpecialLiterals(t *testing.T) {
	f, err := parse(t, `
parameters = 0.5
mean = NaN
variance = Infinity
lower = -Infinity
upper = Infinity
`)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f.Mean))
	assert.True(t, math.IsInf(f.Variance, 1))
	assert.True(t, math.IsInf(f.Lower, -1))
	assert.True(t, math.IsInf(f.Upper, 1))
}

func TestParseContinuousAliases(t *testing.T) {
	f, err := parse(t, `
parameters = 1
mean = 1
variance = 1
cdf.points = 0.5, 1
cdf.values = 0.39, 0.63
pdf.points = 0.5, 1
pdf.values = 0.6, 0.36
icdf.values = 0.5
ipdf.values = 0.69
`)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, f.PMFPoints)
	assert.Equal(t, []float64{0.6, 0.36}, f.PMFValues)
	assert.Equal(t, []float64{0.69}, f.InvX)
}

func TestParseErrors(t *testing.T) {
	for _, c := range []struct {
		name, src, key string
	}{
		{"MissingParameters", "mean = 1\nvariance = 1\n", "parameters"},
		{"MissingMean", "parameters = 1\nvariance = 1\n", "mean"},
		{"MissingVariance", "parameters = 1\nmean = 1\n", "variance"},
		{"BadParameter", "parameters = 1 x\nmean = 1\nvariance = 1\n", "parameters"},
		{"BadNumber", "parameters = 1\nmean = zero\nvariance = 1\n", "mean"},
		{"BadArrayToken", "parameters = 1\nmean = 1\nvariance = 1\ncdf.points = 1, two\ncdf.values = 0.1, 0.2\n", "cdf.points"},
		{"BadBool", "parameters = 1\nmean = 1\nvariance = 1\nconnected = maybe\n", "connected"},
		{"MismatchedCDF", "parameters = 1\nmean = 1\nvariance = 1\ncdf.points = 1, 2\ncdf.values = 0.5\n", "cdf"},
		{"MismatchedInverse", "parameters = 1\nmean = 1\nvariance = 1\nicdf.values = 0.5\nipmf.values = 1, 2\n", "icdf"},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(t, c.src)
			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, "test", ferr.Source)
			assert.Equal(t, c.key, ferr.Key)
		})
	}
}

func TestParamNames(t *testing.T) {
	p, err := properties.LoadString("parameters = 1 x\nmean = 1\nvariance = 1\n")
	require.NoError(t, err)
	_, err = Loader{ParamNames: []string{"n", "p"}}.Parse("test", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter p")
}
