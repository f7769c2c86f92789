/*
 * trial.go, part of thermof.
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

// Trial groups independent runs of the same nominal configuration
// (different random seeds) and, when requested, their averaged view.
type Trial struct {
	Name string
	// Runs preserves the order in which runs were handed in.
	Runs []string
	Data map[string]*Run
	// Avg is the run-averaged view. Nil unless par.Average.
	Avg *TrialAvg
}

// TrialAvg is the averaged view of a trial: per-label conductivity
// series averaged elementwise across runs, and per-label estimates
// averaged over the per-run scalar estimates.
type TrialAvg struct {
	K    map[string][]float64
	KEst map[string]*Estimate
}

// NewTrial aggregates already-analyzed runs into a trial. Runs are
// assumed to expose the same direction labels; the labels of the first
// run define the averaged view. The trial estimate per label is the
// arithmetic mean of the per-run scalar estimates, not a re-estimation
// of the averaged series; the two coincide here because estimation is
// itself a mean, but the per-run order keeps the dispersion statistics
// meaningful.
func NewTrial(name string, runs []*Run, par *Params) (*Trial, error) {
	if len(runs) == 0 {
		return nil, &ConsistencyError{Msg: "trial " + name + " has no runs"}
	}
	t := &Trial{
		Name: name,
		Runs: make([]string, 0, len(runs)),
		Data: make(map[string]*Run, len(runs)),
	}
	for _, r := range runs {
		t.Runs = append(t.Runs, r.Name)
		t.Data[r.Name] = r
	}
	if par.Average {
		avg, err := t.average(par.Isotropic)
		if err != nil {
			return nil, err
		}
		t.Avg = avg
	}
	return t, nil
}

func (t *Trial) average(isotropic bool) (*TrialAvg, error) {
	first := t.Data[t.Runs[0]]
	labels := append([]string{}, first.Directions...)
	if isotropic {
		labels = append(labels, Iso)
	}
	avg := &TrialAvg{
		K:    make(map[string][]float64, len(labels)),
		KEst: make(map[string]*Estimate, len(labels)),
	}
	for _, label := range labels {
		series := make([][]float64, 0, len(t.Runs))
		ests := make([]*Estimate, 0, len(t.Runs))
		for _, name := range t.Runs {
			r := t.Data[name]
			k, ok := r.K[label]
			if !ok {
				return nil, &ConsistencyError{Run: name, Msg: "missing direction " + label}
			}
			series = append(series, k)
			ests = append(ests, r.KEst[label])
		}
		k, err := AverageK(series, t.Runs)
		if err != nil {
			return nil, err
		}
		avg.K[label] = k
		avg.KEst[label] = EstimateStats(ests)
	}
	return avg, nil
}

// Export returns the trial results as a plain mapping suitable for
// structured-document serialization: every run's export keyed by run
// name, plus the averaged estimates with their dispersion statistics.
func (t *Trial) Export() map[string]any {
	data := make(map[string]any, len(t.Data))
	for name, r := range t.Data {
		data[name] = r.Export()
	}
	m := map[string]any{
		"name": t.Name,
		"runs": t.Runs,
		"data": data,
	}
	if t.Avg != nil {
		avg := make(map[string]any, len(t.Avg.KEst))
		for label, est := range t.Avg.KEst {
			avg[label] = map[string]float64{
				"k":     est.K,
				"max":   est.Max,
				"min":   est.Min,
				"std":   est.Std,
				"slope": est.Slope,
			}
		}
		m["avg"] = avg
	}
	return m
}
