package hook

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Notifier dispatches the external rebuild notification. The dispatch is
// fire-and-forget: implementations report nothing back to the caller.
type Notifier interface {
	RebuildSite(ctx context.Context, bookID string)
}

// AsynqNotifier enqueues rebuild tasks for the worker to deliver.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

// RebuildSite enqueues the rebuild task. Failures are logged and discarded:
// by the time this runs the book write has already succeeded, and the call
// result does not depend on the notification.
func (n *AsynqNotifier) RebuildSite(ctx context.Context, bookID string) {
	task, err := NewSiteRebuildTask(bookID)
	if err != nil {
		log.Error().Err(err).Str("book_id", bookID).Msg("Failed to build site rebuild task")
		return
	}

	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		log.Error().Err(err).Str("book_id", bookID).Msg("Failed to enqueue site rebuild")
	}
}
