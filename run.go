/*
 * run.go, part of thermof.
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
	"fmt"
	"sort"
	"strings"

	"github.com/gkubo/thermof/runinfo"
)

// Iso is the label under which the isotropic (direction-averaged)
// series and estimate are stored in a Run or Trial.
const Iso = "iso"

// Run holds the per-direction conductivity analysis of one simulation
// run: a running conductivity series and a windowed estimate per
// direction label, on a shared time axis.
type Run struct {
	Name string
	// Time is the shared time axis, in ps. All series in K are
	// index-aligned with it.
	Time []float64
	// K maps a direction label (x, y, z, contribution-term variants
	// such as x_bond, and Iso when requested) to its running
	// conductivity series.
	K map[string][]float64
	// KEst maps the same labels to the windowed estimates.
	KEst map[string]*Estimate
	// Directions are the labels read from flux data, sorted, without
	// the derived Iso entry.
	Directions []string
	// Info is the run_info.yaml annotation, when the orchestrating
	// caller read one. The aggregation itself never consults it.
	Info *runinfo.Info
	// Thermo holds the thermodynamic output columns of the run log,
	// when the caller extracted them with ReadThermo.
	Thermo map[string][]float64
}

// NewRun integrates and estimates one flux series per direction label.
// sources maps labels to series already read from disk (see
// ReadFluxDir); keeping discovery outside lets the aggregation run
// against synthetic data. All series must have equal length. When
// par.Isotropic, the x, y and z series are combined elementwise into
// an Iso series, estimated over the same window.
func NewRun(name string, sources map[string]*FluxSeries, par *Params, t0, t1 float64) (*Run, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, &NotFoundError{Resource: "flux data for run " + name}
	}
	labels := make([]string, 0, len(sources))
	for label := range sources {
		if !validLabel(label) {
			return nil, &ConsistencyError{Run: name, Msg: fmt.Sprintf("direction label %q not in x, y, z or a contribution variant", label)}
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	r := &Run{
		Name:       name,
		K:          make(map[string][]float64, len(labels)+1),
		KEst:       make(map[string]*Estimate, len(labels)+1),
		Directions: labels,
	}
	for _, label := range labels {
		fs := sources[label]
		if r.Time == nil {
			r.Time = fs.Time
		} else if fs.Len() != len(r.Time) {
			return nil, &ConsistencyError{Run: name,
				Msg: fmt.Sprintf("direction %s has %d samples, direction %s has %d", label, fs.Len(), labels[0], len(r.Time))}
		}
		k := Integrate(fs, par)
		est, err := EstimateK(k, fs.Time, t0, t1)
		if err != nil {
			return nil, fmt.Errorf("run %s direction %s: %w", name, label, err)
		}
		r.K[label] = k
		r.KEst[label] = est
	}

	if par.Isotropic {
		if err := r.isotropic(t0, t1); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// isotropic averages the three Cartesian series elementwise and
// estimates the result. All of x, y and z must be present; a porous
// framework analyzed along a subset of axes has no isotropic value.
func (r *Run) isotropic(t0, t1 float64) error {
	series := make([][]float64, 0, 3)
	for _, d := range []string{"x", "y", "z"} {
		k, ok := r.K[d]
		if !ok {
			return &ConsistencyError{Run: r.Name, Msg: "isotropic average requires directions x, y and z, missing " + d}
		}
		series = append(series, k)
	}
	iso, err := AverageK(series, []string{"x", "y", "z"})
	if err != nil {
		return &ConsistencyError{Run: r.Name, Msg: err.Error()}
	}
	est, err := EstimateK(iso, r.Time, t0, t1)
	if err != nil {
		return fmt.Errorf("run %s isotropic: %w", r.Name, err)
	}
	r.K[Iso] = iso
	r.KEst[Iso] = est
	return nil
}

// Export returns the run results as a plain mapping suitable for
// structured-document serialization by a reporting collaborator. The
// conductivity series themselves are omitted; they are exchanged
// in-memory, not through reports.
func (r *Run) Export() map[string]any {
	kest := make(map[string]float64, len(r.KEst))
	slope := make(map[string]float64, len(r.KEst))
	for label, est := range r.KEst {
		kest[label] = est.K
		slope[label] = est.Slope
	}
	m := map[string]any{
		"name":       r.Name,
		"directions": r.Directions,
		"k_est":      kest,
		"slope":      slope,
	}
	if r.Info != nil {
		m["info"] = r.Info
	}
	return m
}

// validLabel accepts the Cartesian directions and their
// contribution-term variants (x_bond, y_angle and the like).
func validLabel(label string) bool {
	d, _, _ := strings.Cut(label, "_")
	return d == "x" || d == "y" || d == "z"
}
