// Package schedule turns suggested actions into calendar events and
// guards against double-booking the same action.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/notify"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/suggest"
)

// DefaultTime is used when an action is scheduled without a time of day.
const DefaultTime = "10:00"

// EventStore is the calendar persistence surface, satisfied by the
// hybrid reconciler.
type EventStore interface {
	GetEvents(ctx context.Context, userID string) []calendar.Event
	SaveEvents(ctx context.Context, userID string, events []calendar.Event) hybrid.SaveResult
}

type Service struct {
	events   EventStore
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

// New builds the scheduler. notifier may be nil; reminders are then
// skipped.
func New(events EventStore, notifier notify.Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		events:   events,
		notifier: notifier,
		log:      log.With(slog.String("component", "schedule")),
		now:      time.Now,
	}
}

// Suggested generates the action plan for the contact set, minus actions
// that already have a calendar event.
func (s *Service) Suggested(ctx context.Context, userID string, contacts []contact.Contact) []contact.Action {
	scheduled := map[string]bool{}
	for _, e := range s.events.GetEvents(ctx, userID) {
		if e.ActionID != "" {
			scheduled[e.ActionID] = true
		}
	}
	var out []contact.Action
	for _, a := range suggest.Actions(contacts, s.now()) {
		if !scheduled[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// Schedule books an action onto the calendar. Date defaults to the
// action's suggested date, time to DefaultTime. Scheduling the same
// action twice is rejected.
func (s *Service) Schedule(ctx context.Context, userID string, action contact.Action, date, timeOfDay string) (calendar.Event, hybrid.SaveResult, error) {
	events := s.events.GetEvents(ctx, userID)
	for _, e := range events {
		if action.ID != "" && e.ActionID == action.ID {
			return calendar.Event{}, hybrid.SaveResult{}, fmt.Errorf("action %q is already scheduled", action.ID)
		}
	}

	if date == "" {
		if action.SuggestedDate.IsZero() {
			date = s.now().AddDate(0, 0, 1).Format("2006-01-02")
		} else {
			date = action.SuggestedDate.Format("2006-01-02")
		}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return calendar.Event{}, hybrid.SaveResult{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if timeOfDay == "" {
		timeOfDay = DefaultTime
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return calendar.Event{}, hybrid.SaveResult{}, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}

	event := calendar.FromAction(action, date, timeOfDay)
	result := s.events.SaveEvents(ctx, userID, append(events, event))
	if !result.Saved() {
		return calendar.Event{}, result, fmt.Errorf("persist calendar")
	}
	s.log.Info("scheduled action",
		slog.String("user_id", userID),
		slog.String("event_id", event.ID),
		slog.String("date", date))
	return event, result, nil
}

// Events returns the user's calendar.
func (s *Service) Events(ctx context.Context, userID string) []calendar.Event {
	return s.events.GetEvents(ctx, userID)
}

// Remove deletes one event from the calendar.
func (s *Service) Remove(ctx context.Context, userID, eventID string) (hybrid.SaveResult, error) {
	events := s.events.GetEvents(ctx, userID)
	kept := make([]calendar.Event, 0, len(events))
	found := false
	for _, e := range events {
		if e.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return hybrid.SaveResult{}, fmt.Errorf("event %q not found", eventID)
	}
	result := s.events.SaveEvents(ctx, userID, kept)
	if !result.Saved() {
		return result, fmt.Errorf("persist calendar")
	}
	return result, nil
}

// Remind sends a reminder for an event over the configured channel; a
// nil notifier makes it a no-op.
func (s *Service) Remind(ctx context.Context, to string, event calendar.Event) error {
	if s.notifier == nil {
		return nil
	}
	text := fmt.Sprintf("%s on %s at %s", event.Title, event.Date, event.Time)
	if event.Friend != "" {
		text += " with " + event.Friend
	}
	if err := s.notifier.Send(ctx, to, text); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
