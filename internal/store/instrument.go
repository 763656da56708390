package store

import (
	"context"
	"time"
)

// OpObserver receives an observation for every store operation.
type OpObserver interface {
	ObserveStoreOp(op string, seconds float64, err error)
}

// Instrument wraps a Store so every operation is reported to the
// observer. A nil observer returns the store unchanged.
func Instrument(inner Store, obs OpObserver) Store {
	if obs == nil {
		return inner
	}
	return &instrumentedStore{inner: inner, obs: obs}
}

type instrumentedStore struct {
	inner Store
	obs   OpObserver
}

func (s *instrumentedStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	start := time.Now()
	id, err := s.inner.Insert(ctx, collection, doc)
	s.obs.ObserveStoreOp("insert", time.Since(start).Seconds(), err)
	return id, err
}

func (s *instrumentedStore) ListCollections(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := s.inner.ListCollections(ctx)
	s.obs.ObserveStoreOp("list_collections", time.Since(start).Seconds(), err)
	return names, err
}

func (s *instrumentedStore) Connected() bool { return s.inner.Connected() }

func (s *instrumentedStore) DatabaseName() string { return s.inner.DatabaseName() }
