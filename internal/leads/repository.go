package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/plumberpro/backend/internal/store"
)

// Collection is the document collection leads are persisted to.
const Collection = "lead"

// Repository defines the interface for lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
}

// StoreRepository persists leads through the document store client.
type StoreRepository struct {
	store store.Store
}

// NewRepository creates a repository backed by the given store.
func NewRepository(s store.Store) *StoreRepository {
	if s == nil {
		panic("leads: store required")
	}
	return &StoreRepository{store: s}
}

// Create validates the request and inserts a single lead document.
// Storage failures propagate to the caller; there are no retries.
func (r *StoreRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := &Lead{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := r.store.Insert(ctx, Collection, lead)
	if err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}
	lead.ID = id

	return lead, nil
}
