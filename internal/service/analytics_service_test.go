package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dumbuddy/internal/model"
)

func TestRecordAndRecent(t *testing.T) {
	svc := NewAnalyticsService(nil, nil)
	ctx := context.Background()

	svc.Record(ctx, model.EventSessionStart, nil)
	svc.Record(ctx, model.EventCardDrawn, map[string]interface{}{"level": "1"})
	svc.Record(ctx, model.EventNextPlayer, nil)

	events := svc.Recent(ctx, 10)
	require.Len(t, events, 3)
	assert.Equal(t, model.EventNextPlayer, events[0].Type)
	assert.Equal(t, model.EventCardDrawn, events[1].Type)
	assert.Equal(t, model.EventSessionStart, events[2].Type)
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestRecentIsCapped(t *testing.T) {
	svc := NewAnalyticsService(nil, nil)
	ctx := context.Background()

	for i := 0; i < model.EventLogLimit+10; i++ {
		svc.Record(ctx, model.EventCardPassed, nil)
	}

	assert.Len(t, svc.Recent(ctx, model.EventLogLimit), model.EventLogLimit)
	assert.Len(t, svc.Recent(ctx, 5), 5)
}

func TestSummary(t *testing.T) {
	svc := NewAnalyticsService(nil, nil)
	ctx := context.Background()

	svc.Record(ctx, model.EventSessionStart, nil)
	svc.Record(ctx, model.EventCardDrawn, map[string]interface{}{"level": "1"})
	svc.Record(ctx, model.EventCardDrawn, map[string]interface{}{"level": "1"})
	svc.Record(ctx, model.EventCardDrawn, map[string]interface{}{"level": "wildcard"})
	svc.Record(ctx, model.EventCardPassed, nil)
	svc.Record(ctx, model.EventNextPlayer, nil)

	summary := svc.Summary(ctx)
	assert.Equal(t, 6, summary.TotalEvents)
	assert.Equal(t, 1, summary.Sessions)
	assert.Equal(t, 3, summary.CardsDrawn)
	assert.Equal(t, 1, summary.CardsPassed)
	assert.Equal(t, 1, summary.NextPlayerActions)
	assert.Equal(t, 2, summary.PerLevelDrawn["1"])
	assert.Equal(t, 1, summary.PerLevelDrawn["wildcard"])
}
