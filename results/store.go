// Package results persists conductivity estimates in an embedded
// key-value store, so a finished analysis can be consulted across
// sessions (e.g. when sweeping force-field parameters over many trial
// sets) without re-reading gigabytes of simulation output.
package results

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/gkubo/thermof"
)

// Store is a BadgerDB-backed estimate archive. Keys are
// trial/run/direction triples; the averaged view of a trial is stored
// under the run name "avg".
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store rooted at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open estimate store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(trial, run, direction string) []byte {
	return []byte(fmt.Sprintf("kest/%s/%s/%s", trial, run, direction))
}

// PutRun records every direction estimate of one run under the given
// trial name.
func (s *Store) PutRun(trial string, r *thermof.Run) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for label, est := range r.KEst {
			b, err := json.Marshal(est)
			if err != nil {
				return err
			}
			if err := txn.Set(key(trial, r.Name, label), b); err != nil {
				return err
			}
		}
		return nil
	})
}

// PutTrial records every run of a trial and, when present, its
// averaged view under the pseudo-run "avg".
func (s *Store) PutTrial(t *thermof.Trial) error {
	for _, name := range t.Runs {
		if err := s.PutRun(t.Name, t.Data[name]); err != nil {
			return err
		}
	}
	if t.Avg == nil {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for label, est := range t.Avg.KEst {
			b, err := json.Marshal(est)
			if err != nil {
				return err
			}
			if err := txn.Set(key(t.Name, "avg", label), b); err != nil {
				return err
			}
		}
		return nil
	})
}

// Estimate looks up one stored estimate. A missing key surfaces as a
// thermof.NotFoundError naming the triple.
func (s *Store) Estimate(trial, run, direction string) (*thermof.Estimate, error) {
	est := &thermof.Estimate{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(trial, run, direction))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &thermof.NotFoundError{Resource: fmt.Sprintf("estimate %s/%s/%s", trial, run, direction)}
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, est)
		})
	})
	if err != nil {
		return nil, err
	}
	return est, nil
}
