/*
 * xyz.go, part of thermof.
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

// Package xyz reads and writes multi-frame XYZ trajectories, the
// plain-text coordinate dumps of the MD runs whose heat flux the root
// package analyzes. Each frame is an atom-count line, a comment line
// carrying the timestep tag, and atom-count "label x y z" lines. The
// atom count is invariant across the whole trajectory; a frame that
// breaks it is a parse failure, never silently misaligned data.
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// Frame is one timestep's snapshot: parallel atom labels and
// coordinates, plus the comment line as written. Frames read from a
// file keep their source lines so that writing them back is
// byte-for-byte identical.
type Frame struct {
	Atoms  []string
	Coords *mat.Dense // one row per atom, 3 columns
	// Comment is the second line of the frame, usually of the form
	// "Atoms. Timestep: 40000".
	Comment string
	raw     []string
}

// NewFrame builds a frame from scratch, for trajectories assembled in
// memory rather than parsed. coords must have one row per atom and 3
// columns.
func NewFrame(atoms []string, coords *mat.Dense, comment string) (*Frame, error) {
	r, c := coords.Dims()
	if c != 3 || r != len(atoms) {
		return nil, &DimensionError{Msg: fmt.Sprintf("coordinates are %dx%d, want %dx3", r, c, len(atoms))}
	}
	return &Frame{Atoms: atoms, Coords: coords, Comment: comment}, nil
}

// Timestep extracts the timestep tag from the comment line, the third
// whitespace-separated field by the usual dump convention. Empty when
// the comment has another shape.
func (F *Frame) Timestep() string {
	fields := strings.Fields(F.Comment)
	if len(fields) < 3 {
		return ""
	}
	return fields[2]
}

// Masses returns the mass of each atom in the frame, looked up by
// element symbol.
func (F *Frame) Masses() ([]float64, error) {
	masses := make([]float64, len(F.Atoms))
	for i, s := range F.Atoms {
		m, ok := symbolMass[s]
		if !ok {
			return nil, fmt.Errorf("no tabulated mass for element %q (atom %d)", s, i)
		}
		masses[i] = m
	}
	return masses, nil
}

// lines renders the frame in file format. For parsed frames these are
// the source lines untouched.
func (F *Frame) lines() []string {
	if F.raw != nil {
		return F.raw
	}
	out := make([]string, 0, len(F.Atoms)+2)
	out = append(out, strconv.Itoa(len(F.Atoms)), F.Comment)
	for i, a := range F.Atoms {
		out = append(out, fmt.Sprintf("%-2s %-10.4f %-10.4f %-10.4f",
			a, F.Coords.At(i, 0), F.Coords.At(i, 1), F.Coords.At(i, 2)))
	}
	return out
}

// Trajectory is an ordered, immutable sequence of frames with a
// constant atom count. Subdivision operations return new values that
// do not alias the original.
type Trajectory struct {
	frames []*Frame
}

// NFrames returns the number of frames.
func (T *Trajectory) NFrames() int {
	return len(T.frames)
}

// NAtoms returns the per-frame atom count, or 0 for an empty
// trajectory.
func (T *Trajectory) NAtoms() int {
	if len(T.frames) == 0 {
		return 0
	}
	return len(T.frames[0].Atoms)
}

// Frame returns the ith frame. It panics when out of range, like a
// slice access.
func (T *Trajectory) Frame(i int) *Frame {
	return T.frames[i]
}

// CoordFrames returns the coordinate matrix of every frame, in order.
// The matrices are the trajectory's own; treat them as read-only.
func (T *Trajectory) CoordFrames() []*mat.Dense {
	out := make([]*mat.Dense, len(T.frames))
	for i, f := range T.frames {
		out[i] = f.Coords
	}
	return out
}

// Timesteps returns the timestep tag of every frame, in order.
func (T *Trajectory) Timesteps() []string {
	out := make([]string, len(T.frames))
	for i, f := range T.frames {
		out[i] = f.Timestep()
	}
	return out
}

// New assembles a trajectory from frames built in memory. All frames
// must share the first frame's atom count.
func New(frames ...*Frame) (*Trajectory, error) {
	if len(frames) == 0 {
		return &Trajectory{}, nil
	}
	n := len(frames[0].Atoms)
	for i, f := range frames {
		if len(f.Atoms) != n {
			return nil, Error{message: fmt.Sprintf("frame %d has %d atoms, frame 0 has %d", i, len(f.Atoms), n)}
		}
	}
	return &Trajectory{frames: frames}, nil
}

// Read parses a whole trajectory file eagerly. Files ending in .gz or
// .zst are decompressed transparently. The atom count of the first
// frame binds all the others; a frame with a different count, or a
// truncated trailing frame, fails the read.
func Read(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{message: err.Error(), filename: path}
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, Error{message: err.Error(), filename: path}
		}
		defer zr.Close()
		r = zr
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, Error{message: err.Error(), filename: path}
	}
	return parse(lines, path)
}

func parse(lines []string, path string) (*Trajectory, error) {
	if len(lines) == 0 {
		return nil, Error{message: "empty trajectory", filename: path}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || natoms < 1 {
		return nil, Error{message: "bad atom count line: " + lines[0], filename: path}
	}
	size := natoms + 2
	if len(lines)%size != 0 {
		return nil, Error{message: fmt.Sprintf("%d lines do not divide into frames of %d atoms", len(lines), natoms), filename: path}
	}
	T := &Trajectory{frames: make([]*Frame, 0, len(lines)/size)}
	for start := 0; start < len(lines); start += size {
		frame, err := parseFrame(lines[start:start+size], natoms, path, start)
		if err != nil {
			return nil, err
		}
		T.frames = append(T.frames, frame)
	}
	return T, nil
}

func parseFrame(lines []string, natoms int, path string, offset int) (*Frame, error) {
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, Error{message: "bad atom count line: " + lines[0], filename: path}
	}
	if count != natoms {
		return nil, Error{message: fmt.Sprintf("frame at line %d has %d atoms, first frame has %d", offset+1, count, natoms), filename: path}
	}
	F := &Frame{
		Atoms:   make([]string, natoms),
		Coords:  mat.NewDense(natoms, 3, nil),
		Comment: lines[1],
		raw:     lines,
	}
	for i := 0; i < natoms; i++ {
		fields := strings.Fields(lines[i+2])
		if len(fields) < 4 {
			return nil, Error{message: fmt.Sprintf("line %d ill formed: %q", offset+i+3, lines[i+2]), filename: path}
		}
		F.Atoms[i] = fields[0]
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, Error{message: fmt.Sprintf("line %d: bad coordinate: %s", offset+i+3, err.Error()), filename: path}
			}
			F.Coords.Set(i, j, v)
		}
	}
	return F, nil
}

// Write serializes the given frames to w in source order. With no
// indices, the whole trajectory is written. Frames that came from a
// parse and were not rebuilt reproduce their source bytes exactly.
func (T *Trajectory) Write(w io.Writer, frames ...int) error {
	if len(frames) == 0 {
		frames = make([]int, len(T.frames))
		for i := range frames {
			frames[i] = i
		}
	}
	bw := bufio.NewWriter(w)
	for _, i := range frames {
		if i < 0 || i >= len(T.frames) {
			return &DimensionError{Msg: fmt.Sprintf("frame %d out of range, trajectory has %d frames", i, len(T.frames))}
		}
		for _, line := range T.frames[i].lines() {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes the given frames (default all) to a new file at
// path, overwriting any previous content.
func (T *Trajectory) WriteFile(path string, frames ...int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := T.Write(f, frames...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
