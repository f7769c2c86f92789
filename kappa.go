/*
 * kappa.go, part of thermof.
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
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Integrate converts a heat-flux autocorrelation series into the
// running Green-Kubo conductivity, in W/(m K). Each output sample is
// the cumulative integral of the autocorrelation function up to that
// lag, scaled by volume*dt/(kb*temp^2)*conv. The output has the same
// length as the input and is index-aligned with its time sequence.
func Integrate(flux *FluxSeries, par *Params) []float64 {
	if flux == nil || flux.Len() == 0 {
		return nil
	}
	scale := par.Volume * par.Dt / (par.KB * par.Temp * par.Temp) * par.Conv
	k := make([]float64, flux.Len())
	// The zero-lag term enters with half weight, per the trapezoidal
	// rule at the correlation origin. Accumulating it whole
	// double-counts the origin and inflates every sample.
	k[0] = flux.J[0] / 2 * scale
	for i := 1; i < flux.Len(); i++ {
		k[i] = k[i-1] + flux.J[i]*scale
	}
	return k
}

// Estimate is a steady-state conductivity reduced from one or more
// running conductivity series over a time window. Max, Min and Std
// describe the dispersion of the per-source values and are zero when
// only one source went in.
type Estimate struct {
	K     float64 // windowed mean conductivity, W/(m K)
	Slope float64 // regression slope of k vs t inside the window
	Max   float64
	Min   float64
	Std   float64
	N     int // number of source estimates
}

// EstimateK reduces a running conductivity series to its arithmetic
// mean over the window [t0, t1). Both bounds must match time samples
// exactly; a bound with no matching sample is a RangeError. The
// regression slope over the same window is reported alongside: a slope
// far from zero means the series had not reached a plateau and the
// window should be re-chosen.
func EstimateK(k, time []float64, t0, t1 float64) (*Estimate, error) {
	if len(k) != len(time) {
		return nil, &ConsistencyError{Msg: fmt.Sprintf("conductivity and time length mismatch (%d != %d)", len(k), len(time))}
	}
	i0, ok := timeIndex(time, t0)
	if !ok {
		return nil, &RangeError{T: t0}
	}
	i1, ok := timeIndex(time, t1)
	if !ok {
		return nil, &RangeError{T: t1}
	}
	if i1 <= i0 {
		return nil, &RangeError{T: t1}
	}
	_, slope := stat.LinearRegression(time[i0:i1], k[i0:i1], nil, false)
	return &Estimate{
		K:     stat.Mean(k[i0:i1], nil),
		Slope: slope,
		N:     1,
	}, nil
}

// EstimateStats combines estimates from peer sources (one per run)
// into a single estimate: the mean of the per-source values, with
// their max, min and standard deviation characterizing run-to-run
// dispersion. The statistics are over the scalar estimates, not over
// the raw series.
func EstimateStats(ests []*Estimate) *Estimate {
	ks := make([]float64, len(ests))
	slopes := make([]float64, len(ests))
	for i, e := range ests {
		ks[i] = e.K
		slopes[i] = e.Slope
	}
	out := &Estimate{
		K:     stat.Mean(ks, nil),
		Slope: stat.Mean(slopes, nil),
		Max:   floats.Max(ks),
		Min:   floats.Min(ks),
		N:     len(ests),
	}
	if len(ks) > 1 {
		out.Std = stat.StdDev(ks, nil)
	}
	return out
}

// AverageK combines same-length conductivity series elementwise into
// their arithmetic mean. names label the series in errors; when nil or
// short, the series index is used. A length mismatch against the first
// series is a ConsistencyError naming the offender and both lengths.
func AverageK(series [][]float64, names []string) ([]float64, error) {
	if len(series) == 0 {
		return nil, &ConsistencyError{Msg: "no series to average"}
	}
	n := len(series[0])
	avg := make([]float64, n)
	for i, s := range series {
		if len(s) != n {
			name := strconv.Itoa(i)
			if i < len(names) {
				name = names[i]
			}
			return nil, &ConsistencyError{Run: name,
				Msg: fmt.Sprintf("number of samples not equal to first series (%d != %d)", n, len(s))}
		}
		floats.Add(avg, s)
	}
	floats.Scale(1/float64(len(series)), avg)
	return avg, nil
}

// timeIndex finds the index of t in time by exact comparison. The time
// values of series derived from the same flux file are bitwise equal,
// so windows are specified against samples, never interpolated.
func timeIndex(time []float64, t float64) (int, bool) {
	for i, v := range time {
		if v == t {
			return i, true
		}
	}
	return 0, false
}
