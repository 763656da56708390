package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by tests and local development.
// Documents are stored as bson maps keyed by collection name, with
// ObjectID hex identifiers matching what MongoDB would assign.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]bson.M),
	}
}

// Insert marshals the document through bson and appends it to the
// named collection under a fresh ObjectID.
func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	m["_id"] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], m)
	s.mu.Unlock()

	return id.Hex(), nil
}

// ListCollections returns the collection names in sorted order.
func (s *MemoryStore) ListCollections(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Connected always reports true for the in-memory store.
func (s *MemoryStore) Connected() bool { return true }

// DatabaseName identifies the in-memory backing.
func (s *MemoryStore) DatabaseName() string { return "memory" }

// Documents returns a snapshot of the named collection's contents.
func (s *MemoryStore) Documents(collection string) []bson.M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bson.M, len(s.collections[collection]))
	copy(out, s.collections[collection])
	return out
}
