/*
 * thermo.go, part of thermof.
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
	"bufio"
	"os"
	"strconv"
	"strings"
)

// DefaultThermoHeaders is the column header line the MD engine prints
// ahead of each thermodynamic output block in its log.
const DefaultThermoHeaders = "Step Temp Press PotEng TotEng Volume"

// ReadThermo extracts the thermodynamic output of a simulation log.
// Blocks start on the line after one containing headers and end at the
// next "Loop time" line; every fix of the simulation contributes one
// block and all blocks are concatenated per column. Column keys are
// the lowercased header fields.
func ReadThermo(path, headers string) (map[string][]float64, error) {
	if headers == "" {
		headers = DefaultThermoHeaders
	}
	keys := strings.Fields(strings.ToLower(headers))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	thermo := make(map[string][]float64, len(keys))
	for _, k := range keys {
		thermo[k] = []float64{}
	}
	inBlock := false
	lineno := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineno++
		line := sc.Text()
		switch {
		case strings.Contains(line, headers):
			inBlock = true
		case strings.Contains(line, "Loop time"):
			inBlock = false
		case inBlock:
			fields := strings.Fields(line)
			if len(fields) < len(keys) {
				return nil, &ParseError{File: path, Line: lineno,
					Msg: "thermo record shorter than its headers"}
			}
			for i, k := range keys {
				v, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, &ParseError{File: path, Line: lineno, Msg: "bad thermo value: " + err.Error()}
				}
				thermo[k] = append(thermo[k], v)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{File: path, Msg: err.Error()}
	}
	return thermo, nil
}
