package integration

import (
	"context"

	"github.com/RubachokBoss/learnbook/internal/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
	Close() error
}

// NopPublisher drops events. Used when the broker is disabled or unreachable.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *models.Event) error { return nil }

func (NopPublisher) Close() error { return nil }
