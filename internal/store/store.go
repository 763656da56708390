package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by every operation on a store whose
// connection was never established or has been lost.
var ErrUnavailable = errors.New("document store is not available")

// Store defines the minimal document-store surface the API needs.
type Store interface {
	// Insert writes one document into the named collection and returns
	// the identifier the database assigned to it.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// ListCollections returns the names of the collections currently
	// present in the database.
	ListCollections(ctx context.Context) ([]string, error)

	// Connected reports whether the store has a usable connection.
	Connected() bool

	// DatabaseName returns the name of the backing database, or an
	// empty string when disconnected.
	DatabaseName() string
}

// Disconnected returns a Store in the degraded state: every operation
// fails fast with ErrUnavailable. The process keeps serving its static
// endpoints when the database cannot be reached at startup.
func Disconnected() Store {
	return disconnectedStore{}
}

type disconnectedStore struct{}

func (disconnectedStore) Insert(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (disconnectedStore) ListCollections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (disconnectedStore) Connected() bool { return false }

func (disconnectedStore) DatabaseName() string { return "" }
