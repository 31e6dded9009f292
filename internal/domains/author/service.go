package author

import (
	"context"

	"bookclub-backend/internal/callable"
)

var createSchema = callable.Schema{
	"authorName": callable.TypeString,
}

// Service orchestrates the createAuthor procedure.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create is the createAuthor pipeline: admin guard, payload validation,
// name-uniqueness check, insert. The uniqueness check is read-then-write
// without isolation; concurrent duplicates are the store's accepted policy.
func (s *Service) Create(ctx context.Context, identity *callable.Identity, payload map[string]any) (any, error) {
	if err := callable.Authorize(identity, true); err != nil {
		return nil, err
	}
	if err := callable.Validate(payload, createSchema); err != nil {
		return nil, err
	}

	name := payload["authorName"].(string)

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, callable.Internal(err)
	}
	if exists {
		return nil, callable.AlreadyExists("This author already exists")
	}

	id, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, callable.Internal(err)
	}

	return &CreateResult{AuthorID: id}, nil
}
