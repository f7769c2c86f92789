/*
 * kappa_test.go, part of thermof.
 *
 * Copyright 2026 The thermof developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package thermof

import (
	"errors"
	"math"
	"testing"
)

// testParams gives scale = 1 so integration results can be checked by
// hand: k[0] = J[0]/2, then a plain running sum.
func testParams() *Params {
	return &Params{KB: 1, Conv: 1, Dt: 1, Volume: 1, Temp: 1, FluxColumn: 3, Prefix: "J0Jt_t", Isotropic: true, Average: true}
}

func seq(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i)
	}
	return t
}

func TestIntegrateOriginHalving(Te *testing.T) {
	par := &Params{KB: 0.001987, Conv: 69443.84, Dt: 5, Volume: 512000, Temp: 300, FluxColumn: 3}
	flux := &FluxSeries{Time: seq(10), J: []float64{2, 0, 0, 0, 0, 0, 0, 0, 0, 0}}
	k := Integrate(flux, par)
	if len(k) != flux.Len() {
		Te.Fatalf("got %d samples for %d flux values", len(k), flux.Len())
	}
	want := 2.0 / 2 * 512000 * 5 / (0.001987 * 300 * 300) * 69443.84
	if math.Abs(k[0]-want) > 1e-6*want {
		Te.Errorf("first sample %v, want %v", k[0], want)
	}
	// Zero flux afterwards: the running sum must stay put exactly.
	for i, v := range k {
		if v != k[0] {
			Te.Errorf("sample %d moved to %v with zero flux", i, v)
		}
	}
}

func TestIntegrateMonotone(Te *testing.T) {
	par := testParams()
	flux := &FluxSeries{Time: seq(50), J: make([]float64, 50)}
	for i := range flux.J {
		flux.J[i] = 0.5 + float64(i%7)
	}
	k := Integrate(flux, par)
	if k[0] != flux.J[0]/2 {
		Te.Errorf("first sample %v, want half of %v", k[0], flux.J[0])
	}
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			Te.Errorf("series decreased at %d (%v -> %v) under positive flux", i, k[i-1], k[i])
		}
	}
}

func TestEstimateK(Te *testing.T) {
	time := seq(10)
	k := []float64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	est, err := EstimateK(k, time, 2, 5)
	if err != nil {
		Te.Fatal(err)
	}
	// window [2, 5) covers k[2..4]
	if est.K != 7 {
		Te.Errorf("estimate %v, want 7", est.K)
	}
	if math.Abs(est.Slope-2) > 1e-12 {
		Te.Errorf("slope %v, want 2", est.Slope)
	}

	flat := []float64{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	est, err = EstimateK(flat, time, 2, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if est.K != 4 || est.Slope != 0 {
		Te.Errorf("flat series: estimate %v slope %v, want 4 and 0", est.K, est.Slope)
	}
}

func TestEstimateKRange(Te *testing.T) {
	time := seq(10)
	k := seq(10)
	var rerr *RangeError
	if _, err := EstimateK(k, time, 2.5, 5); !errors.As(err, &rerr) {
		Te.Fatalf("t0 between samples: got %v, want RangeError", err)
	}
	if _, err := EstimateK(k, time, 2, 10); !errors.As(err, &rerr) {
		Te.Fatalf("t1 past the series: got %v, want RangeError", err)
	}
	if _, err := EstimateK(k, time, 5, 5); !errors.As(err, &rerr) {
		Te.Fatalf("empty window: got %v, want RangeError", err)
	}
}

func TestEstimateStats(Te *testing.T) {
	ests := []*Estimate{{K: 1, Slope: 0.1}, {K: 2, Slope: 0.2}, {K: 3, Slope: 0.3}}
	s := EstimateStats(ests)
	if s.K != 2 || s.Max != 3 || s.Min != 1 || s.N != 3 {
		Te.Errorf("got K=%v Max=%v Min=%v N=%d", s.K, s.Max, s.Min, s.N)
	}
	if math.Abs(s.Std-1) > 1e-12 {
		Te.Errorf("std %v, want 1", s.Std)
	}
	if math.Abs(s.Slope-0.2) > 1e-12 {
		Te.Errorf("slope %v, want 0.2", s.Slope)
	}

	one := EstimateStats(ests[:1])
	if one.Std != 0 || one.Max != 1 || one.Min != 1 {
		Te.Errorf("single source: got Std=%v Max=%v Min=%v", one.Std, one.Max, one.Min)
	}
}

func TestAverageK(Te *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 4, 7}
	avg, err := AverageK([][]float64{a, b}, []string{"Run1", "Run2"})
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{2, 3, 5}
	for i, v := range avg {
		if v != want[i] {
			Te.Errorf("avg[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestAverageKMismatch(Te *testing.T) {
	a := make([]float64, 100)
	b := make([]float64, 101)
	_, err := AverageK([][]float64{a, b}, []string{"Run1", "Run2"})
	var cerr *ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("got %v, want ConsistencyError", err)
	}
	if cerr.Run != "Run2" {
		Te.Errorf("error blames %q, want Run2", cerr.Run)
	}
}
