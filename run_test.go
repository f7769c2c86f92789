/*
 * run_test.go, part of thermof.
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
	"reflect"
	"testing"
)

// constFlux is a series of constant flux j over n unit time samples.
// With testParams (scale 1) it integrates to j/2, j/2+j, j/2+2j, ...
func constFlux(n int, j float64) *FluxSeries {
	fs := &FluxSeries{Time: seq(n), J: make([]float64, n)}
	for i := range fs.J {
		fs.J[i] = j
	}
	return fs
}

func TestNewRun(Te *testing.T) {
	sources := map[string]*FluxSeries{
		"x": constFlux(10, 2),
		"y": constFlux(10, 2),
		"z": constFlux(10, 2),
	}
	run, err := NewRun("Run1", sources, testParams(), 2, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(run.Directions, []string{"x", "y", "z"}) {
		Te.Errorf("directions %v", run.Directions)
	}
	// k = 1, 3, 5, 7, 9, ... window [2,5) -> mean(5, 7, 9) = 7
	for _, d := range []string{"x", "y", "z", Iso} {
		if run.K[d] == nil {
			Te.Fatalf("no series for %s", d)
		}
		if run.KEst[d].K != 7 {
			Te.Errorf("estimate for %s = %v, want 7", d, run.KEst[d].K)
		}
	}
	if len(run.Time) != 10 {
		Te.Errorf("time axis has %d samples", len(run.Time))
	}
}

func TestNewRunContributionLabels(Te *testing.T) {
	sources := map[string]*FluxSeries{
		"x_bond":  constFlux(10, 2),
		"x_angle": constFlux(10, 4),
	}
	par := testParams()
	par.Isotropic = false
	run, err := NewRun("Run1", sources, par, 2, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if run.KEst["x_bond"].K != 7 || run.KEst["x_angle"].K != 14 {
		Te.Errorf("estimates %v, %v", run.KEst["x_bond"].K, run.KEst["x_angle"].K)
	}
	if _, ok := run.K[Iso]; ok {
		Te.Error("isotropic series present though not requested")
	}
}

func TestNewRunBadLabel(Te *testing.T) {
	sources := map[string]*FluxSeries{"w": constFlux(10, 2)}
	par := testParams()
	par.Isotropic = false
	_, err := NewRun("Run1", sources, par, 2, 5)
	var cerr *ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("got %v, want ConsistencyError", err)
	}
}

func TestNewRunIsotropicNeedsXYZ(Te *testing.T) {
	sources := map[string]*FluxSeries{
		"x": constFlux(10, 2),
		"y": constFlux(10, 2),
	}
	_, err := NewRun("Run1", sources, testParams(), 2, 5)
	var cerr *ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("got %v, want ConsistencyError", err)
	}
}

func TestNewRunLengthMismatch(Te *testing.T) {
	sources := map[string]*FluxSeries{
		"x": constFlux(10, 2),
		"y": constFlux(11, 2),
		"z": constFlux(10, 2),
	}
	_, err := NewRun("Run1", sources, testParams(), 2, 5)
	var cerr *ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("got %v, want ConsistencyError", err)
	}
}

func TestNewRunEmpty(Te *testing.T) {
	_, err := NewRun("Run1", nil, testParams(), 2, 5)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		Te.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestRunExport(Te *testing.T) {
	sources := map[string]*FluxSeries{
		"x": constFlux(10, 2),
		"y": constFlux(10, 2),
		"z": constFlux(10, 2),
	}
	run, err := NewRun("Run1", sources, testParams(), 2, 5)
	if err != nil {
		Te.Fatal(err)
	}
	m := run.Export()
	if m["name"] != "Run1" {
		Te.Errorf("name %v", m["name"])
	}
	kest, ok := m["k_est"].(map[string]float64)
	if !ok {
		Te.Fatalf("k_est has type %T", m["k_est"])
	}
	if kest[Iso] != 7 {
		Te.Errorf("exported iso estimate %v, want 7", kest[Iso])
	}
}
