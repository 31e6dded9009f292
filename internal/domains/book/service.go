package book

import (
	"context"

	"bookclub-backend/internal/callable"
	"bookclub-backend/internal/infrastructure/hook"
)

var createSchema = callable.Schema{
	"bookName":  callable.TypeString,
	"authorId":  callable.TypeString,
	"bookCover": callable.TypeString,
	"summary":   callable.TypeString,
}

// Ingestor is the slice of the asset ingestor the book flow needs.
type Ingestor interface {
	Ingest(ctx context.Context, dataURI, destinationKey string) (string, error)
}

// Service orchestrates the createBook procedure.
type Service struct {
	repo     Repository
	ingestor Ingestor
	notifier hook.Notifier
}

func NewService(repo Repository, ingestor Ingestor, notifier hook.Notifier) *Service {
	return &Service{repo: repo, ingestor: ingestor, notifier: notifier}
}

// Create is the createBook pipeline: admin guard, payload validation, cover
// ingestion, document write, rebuild notification. The notification fires
// only after the write succeeds and its outcome never reaches the caller.
// There is no rollback: a stored cover is orphaned if the write fails.
func (s *Service) Create(ctx context.Context, identity *callable.Identity, payload map[string]any) (any, error) {
	if err := callable.Authorize(identity, true); err != nil {
		return nil, err
	}
	if err := callable.Validate(payload, createSchema); err != nil {
		return nil, err
	}

	bookName := payload["bookName"].(string)
	authorID := payload["authorId"].(string)
	bookCover := payload["bookCover"].(string)
	summary := payload["summary"].(string)

	imageURL, err := s.ingestor.Ingest(ctx, bookCover, "bookCovers/"+bookName)
	if err != nil {
		if callable.KindOf(err) == callable.KindInvalidAsset {
			return nil, err
		}
		return nil, callable.Internal(err)
	}

	id, err := s.repo.Create(ctx, &Book{
		Title:    bookName,
		ImageURL: imageURL,
		AuthorID: authorID,
		Summary:  summary,
	})
	if err != nil {
		return nil, callable.Internal(err)
	}

	s.notifier.RebuildSite(ctx, id)

	return &CreateResult{BookID: id}, nil
}
