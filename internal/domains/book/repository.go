package book

import (
	"context"
	"fmt"

	"bookclub-backend/internal/infrastructure/docstore"
)

// Repository is the book data-access contract.
type Repository interface {
	// Create inserts the book unconditionally and returns its id. The author
	// reference is built from the given id without checking it resolves.
	Create(ctx context.Context, b *Book) (string, error)
}

type docstoreRepository struct {
	books   *docstore.Collection
	authors *docstore.Collection
}

func NewDocstoreRepository(store *docstore.Store) Repository {
	return &docstoreRepository{
		books:   store.Collection("books"),
		authors: store.Collection("authors"),
	}
}

func (r *docstoreRepository) Create(ctx context.Context, b *Book) (string, error) {
	id, err := r.books.Add(ctx, map[string]any{
		"title":    b.Title,
		"imageUrl": b.ImageURL,
		"author":   r.authors.Doc(b.AuthorID),
		"summary":  b.Summary,
	})
	if err != nil {
		return "", fmt.Errorf("create book: %w", err)
	}
	return id, nil
}
