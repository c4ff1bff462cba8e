package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"dumbuddy/internal/cache"
	"dumbuddy/internal/model"
	"dumbuddy/internal/repository"
)

// AnalyticsService records game events and serves the admin dashboard.
// Redis and Mongo sinks are optional; an in-memory capped log is always
// maintained so the server runs standalone. Recording never fails a game
// action: sink errors are logged and dropped.
type AnalyticsService struct {
	eventCache cache.EventCache
	eventRepo  repository.EventRepo

	mu     sync.Mutex
	recent []model.AnalyticsEvent
}

// NewAnalyticsService creates the analytics service. Either sink may be nil.
func NewAnalyticsService(eventCache cache.EventCache, eventRepo repository.EventRepo) *AnalyticsService {
	return &AnalyticsService{
		eventCache: eventCache,
		eventRepo:  eventRepo,
	}
}

// Record appends one event to the log.
func (s *AnalyticsService) Record(ctx context.Context, eventType model.EventType, data map[string]interface{}) {
	event := model.AnalyticsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}

	s.mu.Lock()
	s.recent = append([]model.AnalyticsEvent{event}, s.recent...)
	if len(s.recent) > model.EventLogLimit {
		s.recent = s.recent[:model.EventLogLimit]
	}
	s.mu.Unlock()

	if s.eventCache != nil {
		if err := s.eventCache.Push(ctx, event); err != nil {
			log.Printf("analytics: cache push failed: %v", err)
		}
	}
	if s.eventRepo != nil {
		if err := s.eventRepo.Insert(ctx, event); err != nil {
			log.Printf("analytics: archive insert failed: %v", err)
		}
	}
}

// Recent returns up to limit events, most-recent-first. Reads prefer Redis,
// then the Mongo archive, then the in-memory log.
func (s *AnalyticsService) Recent(ctx context.Context, limit int) []model.AnalyticsEvent {
	if limit <= 0 || limit > model.EventLogLimit {
		limit = model.EventLogLimit
	}

	if s.eventCache != nil {
		events, err := s.eventCache.Recent(ctx, limit)
		if err == nil {
			return events
		}
		log.Printf("analytics: cache read failed: %v", err)
	}

	if s.eventRepo != nil {
		events, err := s.eventRepo.Recent(ctx, limit)
		if err == nil {
			return events
		}
		log.Printf("analytics: archive read failed: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.recent) {
		limit = len(s.recent)
	}
	events := make([]model.AnalyticsEvent, limit)
	copy(events, s.recent[:limit])
	return events
}

// Summary aggregates the recent event log for the admin dashboard.
func (s *AnalyticsService) Summary(ctx context.Context) model.AnalyticsSummary {
	return model.Summarize(s.Recent(ctx, model.EventLogLimit))
}
