package hook

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeSiteRebuild is the task type for build-hook notifications.
const TypeSiteRebuild = "site:rebuild"

// SiteRebuildPayload carries context for logging; the hook endpoint itself
// takes no body.
type SiteRebuildPayload struct {
	BookID string `json:"book_id"`
}

// NewSiteRebuildTask builds the rebuild task for a newly created book.
func NewSiteRebuildTask(bookID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SiteRebuildPayload{BookID: bookID})
	if err != nil {
		return nil, err
	}
	// MaxRetry 0: the notification is best-effort and never retried.
	return asynq.NewTask(TypeSiteRebuild, payload, asynq.MaxRetry(0), asynq.Queue("low")), nil
}
