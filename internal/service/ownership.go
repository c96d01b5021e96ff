package service

import (
	"context"
	"errors"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/repository"
)

// OwnershipResolver gates every read, update and delete on the resource
// hierarchy. There is exactly one implementation of the ownership walk; the
// lifecycle services all delegate here instead of re-deriving join chains.
type OwnershipResolver interface {
	// CheckOwner returns nil when userID transitively owns the resource and
	// ErrNotFound otherwise. Missing resources and resources owned by other
	// users are indistinguishable to the caller.
	CheckOwner(ctx context.Context, userID string, resource domain.Resource, id string) error
}

type ownershipResolver struct {
	owners repository.OwnershipRepository
}

// NewOwnershipResolver creates a resolver over the ownership repository.
func NewOwnershipResolver(owners repository.OwnershipRepository) OwnershipResolver {
	return &ownershipResolver{owners: owners}
}

func (r *ownershipResolver) CheckOwner(ctx context.Context, userID string, resource domain.Resource, id string) error {
	if userID == "" || id == "" {
		return ErrNotFound
	}
	ownerID, err := r.owners.OwnerOf(ctx, resource, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if ownerID != userID {
		return ErrNotFound
	}
	return nil
}
