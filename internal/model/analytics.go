package model

import "time"

// EventType enumerates the analytics events the game emits.
type EventType string

const (
	EventSessionStart EventType = "session_start"
	EventCardDrawn    EventType = "card_drawn"
	EventCardPassed   EventType = "card_passed"
	EventNextPlayer   EventType = "next_player"
	EventConfigChange EventType = "config_change"
)

// Valid reports whether the event type is part of the closed set.
func (t EventType) Valid() bool {
	switch t {
	case EventSessionStart, EventCardDrawn, EventCardPassed, EventNextPlayer, EventConfigChange:
		return true
	}
	return false
}

// AnalyticsEvent is one entry in the append-only event log backing the admin
// dashboard.
type AnalyticsEvent struct {
	ID        string                 `json:"id" bson:"_id,omitempty"`
	Type      EventType              `json:"type" bson:"type"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
}

// EventLogLimit caps how many recent events are kept for summaries.
const EventLogLimit = 500

// AnalyticsSummary aggregates the event log for the admin dashboard.
type AnalyticsSummary struct {
	TotalEvents       int            `json:"totalEvents"`
	Sessions          int            `json:"sessions"`
	CardsDrawn        int            `json:"cardsDrawn"`
	CardsPassed       int            `json:"cardsPassed"`
	NextPlayerActions int            `json:"nextPlayerActions"`
	PerLevelDrawn     map[string]int `json:"perLevelDrawn"`
}

// Summarize folds a slice of events into dashboard totals. Draw events count
// per level; a draw without a level lands in the "unknown" bucket.
func Summarize(events []AnalyticsEvent) AnalyticsSummary {
	summary := AnalyticsSummary{
		TotalEvents:   len(events),
		PerLevelDrawn: make(map[string]int),
	}

	for _, e := range events {
		switch e.Type {
		case EventSessionStart:
			summary.Sessions++
		case EventCardDrawn:
			summary.CardsDrawn++
			level := "unknown"
			if v, ok := e.Data["level"]; ok {
				if s, ok := v.(string); ok && s != "" {
					level = s
				}
			}
			summary.PerLevelDrawn[level]++
		case EventCardPassed:
			summary.CardsPassed++
		case EventNextPlayer:
			summary.NextPlayerActions++
		}
	}

	return summary
}
