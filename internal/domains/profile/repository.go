package profile

import (
	"context"
	"errors"
	"fmt"

	"bookclub-backend/internal/infrastructure/docstore"
)

// ErrNoProfile is returned when a user has no public profile.
var ErrNoProfile = errors.New("profile: no public profile for user")

// Repository is the public-profile data-access contract.
type Repository interface {
	// ExistsByUserID reports whether the user already owns a profile.
	ExistsByUserID(ctx context.Context, userID string) (bool, error)

	// ExistsByUsername reports whether the username is already claimed.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create writes the profile document under the username key.
	Create(ctx context.Context, username, userID string) error

	// FindUsernameByUserID resolves a user's profile id (their username).
	// Fails with ErrNoProfile when the user has none.
	FindUsernameByUserID(ctx context.Context, userID string) (string, error)
}

type docstoreRepository struct {
	profiles *docstore.Collection
}

func NewDocstoreRepository(store *docstore.Store) Repository {
	return &docstoreRepository{profiles: store.Collection("publicProfiles")}
}

func (r *docstoreRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	_, err := r.profiles.FindOneByField(ctx, "userId", userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return false, nil
		}
		return false, fmt.Errorf("find profile by user: %w", err)
	}
	return true, nil
}

func (r *docstoreRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.profiles.Get(ctx, username)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return false, nil
		}
		return false, fmt.Errorf("get profile %s: %w", username, err)
	}
	return true, nil
}

func (r *docstoreRepository) Create(ctx context.Context, username, userID string) error {
	if err := r.profiles.Set(ctx, username, map[string]any{"userId": userID}); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *docstoreRepository) FindUsernameByUserID(ctx context.Context, userID string) (string, error) {
	doc, err := r.profiles.FindOneByField(ctx, "userId", userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return "", ErrNoProfile
		}
		return "", fmt.Errorf("find profile by user: %w", err)
	}
	return doc.ID, nil
}
