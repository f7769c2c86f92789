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

package thermof

import "fmt"

// ParseError reports a malformed or truncated flux or log file. It is
// always returned to the caller: a silently shortened series would
// bias the integrated conductivity without any visible symptom.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// NotFoundError reports a resource (flux file, run directory, run-info
// document) that the calculation expected but could not locate.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Resource
}

// ConsistencyError reports inputs that violate a structural invariant
// of an aggregation: mismatched series lengths across runs, or an
// isotropic combination missing a Cartesian direction. Aggregations
// never proceed over a partial or padded set.
type ConsistencyError struct {
	Run string // the offending run, when one can be singled out
	Msg string
}

func (e *ConsistencyError) Error() string {
	if e.Run != "" {
		return fmt.Sprintf("run %s: %s", e.Run, e.Msg)
	}
	return e.Msg
}

// RangeError reports an estimation window whose bounds are not present
// in the available time samples.
type RangeError struct {
	T float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("time %v not present in the time sequence", e.T)
}
