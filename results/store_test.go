package results

import (
	"errors"
	"testing"

	"github.com/gkubo/thermof"
)

func testTrial(t *testing.T) *thermof.Trial {
	t.Helper()
	par := &thermof.Params{KB: 1, Conv: 1, Dt: 1, Volume: 1, Temp: 1, FluxColumn: 3, Isotropic: true, Average: true}
	runs := make([]*thermof.Run, 0, 2)
	for _, name := range []string{"Run1", "Run2"} {
		sources := map[string]*thermof.FluxSeries{}
		for _, d := range []string{"x", "y", "z"} {
			fs := &thermof.FluxSeries{Time: make([]float64, 10), J: make([]float64, 10)}
			for i := range fs.Time {
				fs.Time[i] = float64(i)
				fs.J[i] = 2
			}
			sources[d] = fs
		}
		run, err := thermof.NewRun(name, sources, par, 2, 5)
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, run)
	}
	trial, err := thermof.NewTrial("trial-1", runs, par)
	if err != nil {
		t.Fatal(err)
	}
	return trial
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	trial := testTrial(t)
	if err := store.PutTrial(trial); err != nil {
		t.Fatalf("failed to archive trial: %v", err)
	}

	est, err := store.Estimate("trial-1", "Run1", "x")
	if err != nil {
		t.Fatalf("failed to look up estimate: %v", err)
	}
	if est.K != trial.Data["Run1"].KEst["x"].K {
		t.Errorf("stored estimate %v, want %v", est.K, trial.Data["Run1"].KEst["x"].K)
	}

	avg, err := store.Estimate("trial-1", "avg", "iso")
	if err != nil {
		t.Fatalf("failed to look up averaged estimate: %v", err)
	}
	if avg.K != trial.Avg.KEst["iso"].K || avg.N != 2 {
		t.Errorf("stored averaged estimate %+v", avg)
	}
}

func TestStoreMissing(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	_, err = store.Estimate("no-such-trial", "Run1", "x")
	var nerr *thermof.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}
