package comment

import (
	"context"
	"errors"
	"time"

	"bookclub-backend/internal/callable"
	"bookclub-backend/internal/domains/profile"
)

var postSchema = callable.Schema{
	"bookId": callable.TypeString,
	"text":   callable.TypeString,
}

// ProfileResolver resolves a caller's public-profile id (their username).
type ProfileResolver interface {
	FindUsernameByUserID(ctx context.Context, userID string) (string, error)
}

// Service orchestrates the postComment procedure.
type Service struct {
	repo     Repository
	profiles ProfileResolver
	now      func() time.Time
}

func NewService(repo Repository, profiles ProfileResolver) *Service {
	return &Service{repo: repo, profiles: profiles, now: time.Now}
}

// Post is the postComment pipeline: authentication guard, payload
// validation, caller-profile resolution, insert. A caller without a public
// profile cannot comment; nothing is written in that case.
func (s *Service) Post(ctx context.Context, identity *callable.Identity, payload map[string]any) (any, error) {
	if err := callable.Authorize(identity, false); err != nil {
		return nil, err
	}
	if err := callable.Validate(payload, postSchema); err != nil {
		return nil, err
	}

	bookID := payload["bookId"].(string)
	text := payload["text"].(string)

	username, err := s.profiles.FindUsernameByUserID(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, profile.ErrNoProfile) {
			return nil, callable.NotFound("You must have a public profile to comment")
		}
		return nil, callable.Internal(err)
	}

	id, err := s.repo.Create(ctx, &Comment{
		Text:        text,
		Username:    username,
		DateCreated: s.now(),
		BookID:      bookID,
	})
	if err != nil {
		return nil, callable.Internal(err)
	}

	return &PostResult{CommentID: id}, nil
}
