package comment

import (
	"context"
	"fmt"

	"bookclub-backend/internal/infrastructure/docstore"
)

// Repository is the comment data-access contract.
type Repository interface {
	// Create inserts the comment and returns its id. The book reference is
	// written without checking it resolves.
	Create(ctx context.Context, cm *Comment) (string, error)
}

type docstoreRepository struct {
	comments *docstore.Collection
	books    *docstore.Collection
}

func NewDocstoreRepository(store *docstore.Store) Repository {
	return &docstoreRepository{
		comments: store.Collection("comments"),
		books:    store.Collection("books"),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, cm *Comment) (string, error) {
	id, err := r.comments.Add(ctx, map[string]any{
		"text":        cm.Text,
		"username":    cm.Username,
		"dateCreated": cm.DateCreated,
		"book":        r.books.Doc(cm.BookID),
	})
	if err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}
	return id, nil
}
