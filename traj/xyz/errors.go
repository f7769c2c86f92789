/*
 * errors.go, part of thermof.
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

import "fmt"

// Error is the parse/write error for XYZ trajectories. It carries the
// file implicated so a caller orchestrating many runs can name the one
// to re-generate.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return "xyz trajectory error: " + err.message
	}
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

// Decorate adds the caller's name to the error's trace and returns the
// trace so far.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file the failing trajectory was read from, or
// an empty string for in-memory trajectories.
func (err Error) FileName() string { return err.filename }

// Format returns the trajectory format associated to the error.
func (err Error) Format() string { return "xyz" }

// DimensionError reports a subdivision or write request outside the
// (frames, atoms, 3) shape of a trajectory.
type DimensionError struct {
	Msg string
}

func (e *DimensionError) Error() string {
	return "dimension error: " + e.Msg
}
