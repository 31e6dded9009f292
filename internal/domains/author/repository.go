package author

import (
	"context"
	"errors"
	"fmt"

	"bookclub-backend/internal/infrastructure/docstore"
)

// Repository is the author data-access contract.
type Repository interface {
	// ExistsByName reports whether an author with that exact name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts the author and returns its id.
	Create(ctx context.Context, name string) (string, error)
}

type docstoreRepository struct {
	authors *docstore.Collection
}

func NewDocstoreRepository(store *docstore.Store) Repository {
	return &docstoreRepository{authors: store.Collection("authors")}
}

func (r *docstoreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.authors.FindOneByField(ctx, "name", name)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return false, nil
		}
		return false, fmt.Errorf("find author by name: %w", err)
	}
	return true, nil
}

func (r *docstoreRepository) Create(ctx context.Context, name string) (string, error) {
	id, err := r.authors.Add(ctx, map[string]any{"name": name})
	if err != nil {
		return "", fmt.Errorf("create author: %w", err)
	}
	return id, nil
}
