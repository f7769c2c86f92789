/*
 * subdivide.go, part of thermof.
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

package xyz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func matNew(rows int, data []float64) *mat.Dense {
	return mat.NewDense(rows, 3, data)
}

// all returns 0..n-1, the default selection for a nil index slice.
func all(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (T *Trajectory) checkFrames(frames []int) ([]int, error) {
	if frames == nil {
		return all(T.NFrames()), nil
	}
	for _, f := range frames {
		if f < 0 || f >= T.NFrames() {
			return nil, &DimensionError{Msg: fmt.Sprintf("frame %d outside shape (%d frames, %d atoms, 3 axes)", f, T.NFrames(), T.NAtoms())}
		}
	}
	return frames, nil
}

func (T *Trajectory) checkAtoms(atoms []int) ([]int, error) {
	if atoms == nil {
		return all(T.NAtoms()), nil
	}
	for _, a := range atoms {
		if a < 0 || a >= T.NAtoms() {
			return nil, &DimensionError{Msg: fmt.Sprintf("atom %d outside shape (%d frames, %d atoms, 3 axes)", a, T.NFrames(), T.NAtoms())}
		}
	}
	return atoms, nil
}

// SubCoords copies the selected frames, atoms and coordinate axes into
// a fresh (frames, atoms, dims) block. A nil index slice selects
// everything along that axis. Out-of-range indices are a
// DimensionError naming the trajectory's 3-axis shape.
func (T *Trajectory) SubCoords(frames, atoms, dims []int) ([][][]float64, error) {
	frames, err := T.checkFrames(frames)
	if err != nil {
		return nil, err
	}
	atoms, err = T.checkAtoms(atoms)
	if err != nil {
		return nil, err
	}
	if dims == nil {
		dims = []int{0, 1, 2}
	}
	for _, d := range dims {
		if d < 0 || d > 2 {
			return nil, &DimensionError{Msg: fmt.Sprintf("axis %d outside shape (%d frames, %d atoms, 3 axes)", d, T.NFrames(), T.NAtoms())}
		}
	}
	out := make([][][]float64, len(frames))
	for i, f := range frames {
		coords := T.frames[f].Coords
		out[i] = make([][]float64, len(atoms))
		for j, a := range atoms {
			out[i][j] = make([]float64, len(dims))
			for k, d := range dims {
				out[i][j][k] = coords.At(a, d)
			}
		}
	}
	return out, nil
}

// SubAtoms copies the selected atom labels per selected frame. A nil
// index slice selects everything along that axis.
func (T *Trajectory) SubAtoms(frames, atoms []int) ([][]string, error) {
	frames, err := T.checkFrames(frames)
	if err != nil {
		return nil, err
	}
	atoms, err = T.checkAtoms(atoms)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(frames))
	for i, f := range frames {
		out[i] = make([]string, len(atoms))
		for j, a := range atoms {
			out[i][j] = T.frames[f].Atoms[a]
		}
	}
	return out, nil
}

// Sub builds a new, independent trajectory restricted to the selected
// frames and atoms. The frames are rebuilt, so writing them formats
// the coordinates anew rather than reproducing source bytes.
func (T *Trajectory) Sub(frames, atoms []int) (*Trajectory, error) {
	coords, err := T.SubCoords(frames, atoms, nil)
	if err != nil {
		return nil, err
	}
	labels, err := T.SubAtoms(frames, atoms)
	if err != nil {
		return nil, err
	}
	frames, _ = T.checkFrames(frames)
	sub := make([]*Frame, len(frames))
	for i, f := range frames {
		flat := make([]float64, 0, len(coords[i])*3)
		for _, c := range coords[i] {
			flat = append(flat, c...)
		}
		frame, err := NewFrame(labels[i], matNew(len(coords[i]), flat), T.frames[f].Comment)
		if err != nil {
			return nil, err
		}
		sub[i] = frame
	}
	return New(sub...)
}
