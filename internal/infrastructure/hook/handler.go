package hook

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// RebuildHandler delivers site rebuild notifications: an empty POST to the
// configured build-hook URL.
type RebuildHandler struct {
	hookURL string
	client  *http.Client
}

func NewRebuildHandler(hookURL string) *RebuildHandler {
	return &RebuildHandler{
		hookURL: hookURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ProcessTask POSTs the build hook. Delivery is best-effort: non-2xx and
// network failures are logged and swallowed so the task is never retried.
func (h *RebuildHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload SiteRebuildPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal site rebuild payload")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.hookURL, nil)
	if err != nil {
		log.Error().Err(err).Str("book_id", payload.BookID).Msg("Failed to build rebuild request")
		return nil
	}

	resp, err := h.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("book_id", payload.BookID).Msg("Site rebuild hook unreachable")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("book_id", payload.BookID).
			Msg("Site rebuild hook rejected")
		return nil
	}

	log.Info().Str("book_id", payload.BookID).Msg("Site rebuild triggered")
	return nil
}
