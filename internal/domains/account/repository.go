package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookclub-backend/internal/infrastructure/docstore"
	"bookclub-backend/pkg/cache"
)

// Repository is the account data-access contract.
type Repository interface {
	// Create inserts a new account. Fails with ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, email, passwordHash string) (*Account, error)

	// GetByID fetches an account; ErrAccountNotFound when absent. Results may
	// be served from cache, where PasswordHash is never stored, so the
	// returned hash can be empty. Credential checks must go through
	// GetByEmail.
	GetByID(ctx context.Context, id string) (*Account, error)

	// GetByEmail fetches an account by email; ErrAccountNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// SetAdminClaim grants the admin claim. Granting an already-admin
	// account is a no-op.
	SetAdminClaim(ctx context.Context, id string) error
}

const (
	accountCacheKeyPrefix = "account:"
	accountCacheTTL       = 5 * time.Minute
)

type docstoreRepository struct {
	accounts *docstore.Collection
	cache    cache.Cache
}

func NewDocstoreRepository(store *docstore.Store, cache cache.Cache) Repository {
	return &docstoreRepository{
		accounts: store.Collection("accounts"),
		cache:    cache,
	}
}

func (r *docstoreRepository) Create(ctx context.Context, email, passwordHash string) (*Account, error) {
	// Read-then-write uniqueness; see the docstore's consistency policy.
	if _, err := r.accounts.FindOneByField(ctx, "email", email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, docstore.ErrNoDocument) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	id, err := r.accounts.Add(ctx, map[string]any{
		"email":        email,
		"passwordHash": passwordHash,
		"admin":        false,
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &Account{ID: id, Email: email, Admin: false, PasswordHash: passwordHash}, nil
}

func (r *docstoreRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	cacheKey := accountCacheKeyPrefix + id

	var cached Account
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	doc, err := r.accounts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	acct := fromDocument(doc)

	// Best-effort cache fill; PasswordHash is excluded by its json tag.
	_ = r.cache.Set(ctx, cacheKey, acct, accountCacheTTL)

	return acct, nil
}

func (r *docstoreRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	doc, err := r.accounts.FindOneByField(ctx, "email", email)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return fromDocument(doc), nil
}

func (r *docstoreRepository) SetAdminClaim(ctx context.Context, id string) error {
	if err := r.accounts.Merge(ctx, id, map[string]any{"admin": true}); err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set admin claim: %w", err)
	}

	// The cached copy now carries a stale claim; drop it.
	_ = r.cache.Delete(ctx, accountCacheKeyPrefix+id)

	return nil
}

func fromDocument(doc *docstore.Document) *Account {
	return &Account{
		ID:           doc.ID,
		Email:        doc.StringField("email"),
		Admin:        doc.BoolField("admin"),
		PasswordHash: doc.StringField("passwordHash"),
	}
}
