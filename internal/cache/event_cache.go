// Package cache holds the Redis-backed hot store for analytics events.
package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"dumbuddy/internal/model"
)

// EventCache keeps the capped most-recent-first analytics event list.
type EventCache interface {
	Push(ctx context.Context, event model.AnalyticsEvent) error
	Recent(ctx context.Context, limit int) ([]model.AnalyticsEvent, error)
}

type eventCache struct {
	client *redis.Client
}

// NewEventCache creates a Redis-backed event cache.
func NewEventCache(client *redis.Client) EventCache {
	return &eventCache{client: client}
}

const eventsKey = "analytics:events"

func (c *eventCache) Push(ctx context.Context, event model.AnalyticsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := c.client.LPush(ctx, eventsKey, data).Err(); err != nil {
		return err
	}
	return c.client.LTrim(ctx, eventsKey, 0, int64(model.EventLogLimit-1)).Err()
}

func (c *eventCache) Recent(ctx context.Context, limit int) ([]model.AnalyticsEvent, error) {
	raw, err := c.client.LRange(ctx, eventsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	events := make([]model.AnalyticsEvent, 0, len(raw))
	for _, item := range raw {
		var event model.AnalyticsEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
