/*
 * params.go, part of thermof.
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

// Params holds the physical constants and reading options for one
// conductivity calculation. Every function in this package takes its
// parameters explicitly; there is no process-wide parameter state.
type Params struct {
	// KB is the Boltzmann constant in the simulation energy units,
	// kcal/(mol K) for the default force fields.
	KB float64
	// Conv converts the accumulated integral to W/(m K).
	Conv float64
	// Dt is the simulation timestep in femtoseconds.
	Dt float64
	// Volume is the simulation cell volume in cubic Angstroms.
	Volume float64
	// Temp is the simulation temperature in Kelvin.
	Temp float64
	// Skip is the number of leading records of a flux file to
	// discard. The MD engine dumps the correlation function
	// repeatedly during equilibration; only the final dump is
	// meaningful.
	Skip int
	// FluxColumn is the zero-based field index of the tracked flux
	// component within a record.
	FluxColumn int
	// Prefix is the flux file name prefix; the direction label is
	// the substring between it and the file extension.
	Prefix string
	// Isotropic adds an "iso" series averaged over the x, y and z
	// directions to every run.
	Isotropic bool
	// Average adds the run-averaged view to every trial.
	Average bool
}

// DefaultParams returns the parameter set used throughout the original
// MOF studies: kcal/mol units, a 5 fs timestep and an 80x80x80
// Angstrom cell at 300 K.
func DefaultParams() *Params {
	return &Params{
		KB:         0.001987,
		Conv:       69443.84,
		Dt:         5,
		Volume:     80 * 80 * 80,
		Temp:       300,
		Skip:       200014,
		FluxColumn: 3,
		Prefix:     "J0Jt_t",
		Isotropic:  true,
		Average:    true,
	}
}

// Validate checks that the parameters can produce a meaningful
// conductivity. The zero value of Params is not usable.
func (p *Params) Validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("nil parameters")
	case p.KB <= 0:
		return fmt.Errorf("non-positive Boltzmann constant %v", p.KB)
	case p.Conv <= 0:
		return fmt.Errorf("non-positive unit conversion %v", p.Conv)
	case p.Dt <= 0:
		return fmt.Errorf("non-positive timestep %v fs", p.Dt)
	case p.Volume <= 0:
		return fmt.Errorf("non-positive cell volume %v", p.Volume)
	case p.Temp <= 0:
		return fmt.Errorf("non-positive temperature %v K", p.Temp)
	case p.Skip < 0:
		return fmt.Errorf("negative record skip %d", p.Skip)
	case p.FluxColumn < 1:
		return fmt.Errorf("flux column %d overlaps the correlation index field", p.FluxColumn)
	}
	return nil
}
