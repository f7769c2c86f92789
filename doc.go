/*
 * doc.go, part of thermof.
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

// Package thermof estimates the thermal conductivity of porous
// crystals from the output of molecular-dynamics simulations, using
// the Green-Kubo relation on heat-flux autocorrelation functions.
//
// A conductivity calculation goes through four stages: ReadFlux parses
// the autocorrelation function written by the MD engine for one
// spatial direction, Integrate turns it into a running conductivity
// series, EstimateK reduces that series to a steady-state value over a
// time window, and NewRun/NewTrial combine directions and independent
// runs into isotropic and trial-averaged results.
//
// The companion packages traj/xyz and pbc handle the structural side
// of the same simulations: multi-frame coordinate trajectories and
// minimum-image geometry in periodic cells.
package thermof
