package profile

import (
	"context"
	"errors"

	"bookclub-backend/internal/callable"
	"bookclub-backend/internal/domains/account"
)

var createSchema = callable.Schema{
	"username": callable.TypeString,
}

// AccountProvider is the identity-provider slice the profile flow needs:
// look up the caller's account and grant the admin claim.
type AccountProvider interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
	SetAdminClaim(ctx context.Context, id string) error
}

// Service orchestrates the createPublicProfile procedure.
type Service struct {
	repo       Repository
	accounts   AccountProvider
	adminEmail string
}

func NewService(repo Repository, accounts AccountProvider, adminEmail string) *Service {
	return &Service{repo: repo, accounts: accounts, adminEmail: adminEmail}
}

// Create is the createPublicProfile pipeline: authentication guard, payload
// validation, the two uniqueness checks (profile-per-user first, then
// username), and the profile write. Between the checks and the write sits
// the privilege escalation: when the caller's account email matches the
// configured administrator address, the admin claim is granted before the
// profile is written. The grant is idempotent and the write does not depend
// on it.
func (s *Service) Create(ctx context.Context, identity *callable.Identity, payload map[string]any) (any, error) {
	if err := callable.Authorize(identity, false); err != nil {
		return nil, err
	}
	if err := callable.Validate(payload, createSchema); err != nil {
		return nil, err
	}

	username := payload["username"].(string)

	hasProfile, err := s.repo.ExistsByUserID(ctx, identity.Subject)
	if err != nil {
		return nil, callable.Internal(err)
	}
	if hasProfile {
		return nil, callable.AlreadyExists("This user already has a public profile")
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, callable.Internal(err)
	}
	if taken {
		return nil, callable.AlreadyExists("This username already belongs to an existing user")
	}

	acct, err := s.accounts.GetByID(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, callable.NotFound("account not found")
		}
		return nil, callable.Internal(err)
	}

	if s.adminEmail != "" && acct.Email == s.adminEmail {
		if err := s.accounts.SetAdminClaim(ctx, identity.Subject); err != nil {
			return nil, callable.Internal(err)
		}
	}

	if err := s.repo.Create(ctx, username, identity.Subject); err != nil {
		return nil, callable.Internal(err)
	}

	return &CreateResult{Username: username}, nil
}
