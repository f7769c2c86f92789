/*
 * pbc.go, part of thermof.
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

// Package pbc implements minimum-image-convention geometry over
// orthorhombic periodic cells: the displacement and distance math
// behind the structural diagnostics (framework rigidity, breathing)
// run on the same trajectories whose heat flux the root package
// integrates. Cells are given as per-axis edge lengths; triclinic
// cells are not handled.
package pbc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinImage returns the minimum-image component of displacement d along
// an axis of length edge: a displacement above half the edge wraps
// back by a full edge, one at or below minus half the edge wraps
// forward.
func MinImage(d, edge float64) float64 {
	if d > edge*0.5 {
		return d - edge
	}
	if d <= -edge*0.5 {
		return d + edge
	}
	return d
}

// Displacement returns the minimum-image displacement from a to b,
// per axis, in a cell with the given edge lengths.
func Displacement(a, b, cell []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 || len(cell) != 3 {
		return nil, fmt.Errorf("coordinates and cell must have 3 components, got %d, %d and %d", len(a), len(b), len(cell))
	}
	d := make([]float64, 3)
	for i := range d {
		d[i] = MinImage(b[i]-a[i], cell[i])
	}
	return d, nil
}

// Distance returns the minimum-image distance between a and b.
func Distance(a, b, cell []float64) (float64, error) {
	d, err := Displacement(a, b, cell)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]), nil
}

// Distances computes, frame by frame, the minimum-image distance of
// every atom from its position in the reference frame. frames holds
// one natoms-by-3 matrix per timestep, all with the same atom order;
// the result has one row per frame and one column per atom. It is the
// structural counterpart of the running conductivity series: a flat
// row band means a rigid framework, drift or oscillation means
// breathing.
func Distances(frames []*mat.Dense, cell [3]float64, ref int) (*mat.Dense, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames")
	}
	if ref < 0 || ref >= len(frames) {
		return nil, fmt.Errorf("reference frame %d out of range, %d frames", ref, len(frames))
	}
	natoms, c := frames[0].Dims()
	if c != 3 {
		return nil, fmt.Errorf("frames must be (atoms, 3), frame 0 is (%d, %d)", natoms, c)
	}
	refc := frames[ref]
	out := mat.NewDense(len(frames), natoms, nil)
	for fi, frame := range frames {
		r, c := frame.Dims()
		if r != natoms || c != 3 {
			return nil, fmt.Errorf("frame %d is (%d, %d), frame 0 is (%d, 3)", fi, r, c, natoms)
		}
		for a := 0; a < natoms; a++ {
			var sum float64
			for j := 0; j < 3; j++ {
				d := MinImage(frame.At(a, j)-refc.At(a, j), cell[j])
				sum += d * d
			}
			out.Set(fi, a, math.Sqrt(sum))
		}
	}
	return out, nil
}

// CenterOfMass returns the mass-weighted mean position of one frame's
// coordinates.
func CenterOfMass(coords *mat.Dense, masses []float64) ([]float64, error) {
	n, c := coords.Dims()
	if c != 3 {
		return nil, fmt.Errorf("coordinates must be (atoms, 3), got (%d, %d)", n, c)
	}
	if len(masses) != n {
		return nil, fmt.Errorf("%d masses for %d atoms", len(masses), n)
	}
	var total float64
	cm := make([]float64, 3)
	for i := 0; i < n; i++ {
		total += masses[i]
		for j := 0; j < 3; j++ {
			cm[j] += masses[i] * coords.At(i, j)
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("zero total mass")
	}
	for j := range cm {
		cm[j] /= total
	}
	return cm, nil
}

// MeanDisplacement returns the time-averaged displacement of a single
// atom along each axis over its per-frame coordinates (one row per
// frame). When normalize is set, positions are taken relative to the
// atom's position at frame ref.
func MeanDisplacement(coords *mat.Dense, normalize bool, ref int) ([]float64, error) {
	return meanDisplacement(coords, normalize, ref, false)
}

// MeanSquaredDisplacement is MeanDisplacement over the squared
// per-axis displacements, the per-atom ingredient of an MSD analysis.
func MeanSquaredDisplacement(coords *mat.Dense, normalize bool, ref int) ([]float64, error) {
	return meanDisplacement(coords, normalize, ref, true)
}

func meanDisplacement(coords *mat.Dense, normalize bool, ref int, squared bool) ([]float64, error) {
	n, c := coords.Dims()
	if c != 3 {
		return nil, fmt.Errorf("coordinates must be (frames, 3), got (%d, %d)", n, c)
	}
	if n == 0 {
		return nil, fmt.Errorf("no frames")
	}
	if ref < 0 || ref >= n {
		return nil, fmt.Errorf("reference frame %d out of range, %d frames", ref, n)
	}
	out := make([]float64, 3)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			v := coords.At(i, j)
			if normalize {
				v -= coords.At(ref, j)
			}
			if squared {
				v *= v
			}
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(n)
	}
	return out, nil
}
