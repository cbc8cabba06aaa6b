// File: badger.go
// Role: Badger sample sink. Keys are run/<id>/<step as 8 big-endian bytes>,
//       so a prefix scan returns a run's samples in step order.

package ensemble

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const badgerRunPrefix = "run/"

// BadgerRecorder persists samples in an embedded Badger store.
type BadgerRecorder struct {
	db *badger.DB
}

// OpenBadgerRecorder opens (or creates) the store at dir.
func OpenBadgerRecorder(dir string) (*BadgerRecorder, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ensemble: open badger %s: %w", dir, err)
	}

	return &BadgerRecorder{db: db}, nil
}

func badgerKey(run string, step int) []byte {
	key := make([]byte, 0, len(badgerRunPrefix)+len(run)+1+8)
	key = append(key, badgerRunPrefix...)
	key = append(key, run...)
	key = append(key, '/')

	return binary.BigEndian.AppendUint64(key, uint64(step))
}

// Record stores s under its run and step.
func (b *BadgerRecorder) Record(_ context.Context, s Sample) error {
	data, err := encodeSample(s)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(s.Run, s.Step), data)
	})
	if err != nil {
		return fmt.Errorf("ensemble: badger record %s/%d: %w", s.Run, s.Step, err)
	}

	return nil
}

// Samples returns the samples of run ordered by step.
func (b *BadgerRecorder) Samples(run string) ([]Sample, error) {
	prefix := []byte(badgerRunPrefix + run + "/")
	var out []Sample
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				s, err := decodeSample(v)
				if err != nil {
					return err
				}
				out = append(out, s)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensemble: badger samples %s: %w", run, err)
	}

	return out, nil
}

// Runs returns the recorded run IDs in key order.
func (b *BadgerRecorder) Runs() ([]string, error) {
	prefix := []byte(badgerRunPrefix)
	var runs []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()[len(prefix):]
			// The step suffix is 8 bytes plus the separator.
			if len(key) < 9 {
				continue
			}
			run := key[:len(key)-9]
			if n := len(runs); n == 0 || !bytes.Equal([]byte(runs[n-1]), run) {
				runs = append(runs, string(run))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ensemble: badger runs: %w", err)
	}

	return runs, nil
}

// Close closes the store.
func (b *BadgerRecorder) Close() error {
	return b.db.Close()
}
