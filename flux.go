/*
 * flux.go, part of thermof.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// FluxSeries is the heat-flux autocorrelation function read for one
// spatial direction of one run. Time is in picoseconds, derived from
// the 1-based correlation index and the timestep. Both slices are
// index-aligned and must be treated as read-only once built.
type FluxSeries struct {
	Time []float64
	J    []float64
}

// Len returns the number of samples in the series.
func (f *FluxSeries) Len() int {
	return len(f.J)
}

// ReadFlux reads a heat-flux autocorrelation file written by the MD
// engine. The first par.Skip records are discarded (equilibration
// dumps); in the remaining ones the first field is the 1-based
// correlation index and field par.FluxColumn is the tracked flux
// component. Files ending in .gz or .zst are decompressed on the fly.
func ReadFlux(path string, par *Params) (*FluxSeries, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := decompress(f, path)
	if err != nil {
		return nil, &ParseError{File: path, Msg: err.Error()}
	}
	defer r.Close()

	fs := &FluxSeries{}
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		if lineno <= par.Skip {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= par.FluxColumn {
			return nil, &ParseError{File: path, Line: lineno,
				Msg: fmt.Sprintf("record has %d fields, flux column %d needs at least %d", len(fields), par.FluxColumn, par.FluxColumn+1)}
		}
		index, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &ParseError{File: path, Line: lineno, Msg: "bad correlation index: " + err.Error()}
		}
		j, err := strconv.ParseFloat(fields[par.FluxColumn], 64)
		if err != nil {
			return nil, &ParseError{File: path, Line: lineno, Msg: "bad flux value: " + err.Error()}
		}
		fs.Time = append(fs.Time, (index-1)*par.Dt/1000.0)
		fs.J = append(fs.J, j)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{File: path, Msg: err.Error()}
	}
	if fs.Len() == 0 {
		return nil, &ParseError{File: path, Msg: "no flux records past the equilibration region"}
	}
	return fs, nil
}

// FluxFiles scans a run directory for flux autocorrelation files whose
// base name starts with prefix, and maps each direction label (the
// substring between the prefix and the extension, e.g. J0Jt_tx.dat ->
// x) to its path. A scan with zero matches returns a NotFoundError.
func FluxFiles(dir, prefix string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		label := strings.TrimPrefix(e.Name(), prefix)
		if i := strings.Index(label, "."); i >= 0 {
			label = label[:i]
		}
		if label == "" {
			continue
		}
		files[label] = filepath.Join(dir, e.Name())
	}
	if len(files) == 0 {
		return nil, &NotFoundError{Resource: fmt.Sprintf("flux file with prefix %q in %s", prefix, dir)}
	}
	return files, nil
}

// ReadFluxDir resolves the flux files of a run directory and reads
// each of them, returning a label -> series mapping ready for NewRun.
func ReadFluxDir(dir string, par *Params) (map[string]*FluxSeries, error) {
	files, err := FluxFiles(dir, par.Prefix)
	if err != nil {
		return nil, err
	}
	sources := make(map[string]*FluxSeries, len(files))
	for label, path := range files {
		fs, err := ReadFlux(path, par)
		if err != nil {
			return nil, fmt.Errorf("direction %s: %w", label, err)
		}
		sources[label] = fs
	}
	return sources, nil
}

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

// decompress wraps r according to the file extension. Plain files pass
// through untouched.
func decompress(r io.Reader, path string) (io.ReadCloser, error) {
	switch filepath.Ext(path) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return nopCloser{bufio.NewReader(r)}, nil
	}
}
