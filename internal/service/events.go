package service

import (
	"context"
	"time"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/RubachokBoss/learnbook/internal/service/integration"
	"github.com/rs/zerolog"
)

// publish never fails the caller; broker errors are only logged.
func publish(ctx context.Context, pub integration.EventPublisher, logger zerolog.Logger, event models.Event) {
	if pub == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := pub.Publish(ctx, &event); err != nil {
		logger.Warn().
			Err(err).
			Str("type", event.Type).
			Str("entity_id", event.EntityID).
			Msg("Failed to publish event")
	}
}
