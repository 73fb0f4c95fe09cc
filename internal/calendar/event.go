// Package calendar models scheduled relationship actions and renders
// them as downloadable iCalendar files.
package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
)

// Event is a scheduled action on the user's relationship calendar.
type Event struct {
	ID          string `json:"id"`
	ActionID    string `json:"actionId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`           // YYYY-MM-DD
	Time        string `json:"time,omitempty"` // HH:MM, 24h
	Duration    int    `json:"duration"`       // minutes
	Friend      string `json:"friend,omitempty"`
	FriendID    string `json:"friendId,omitempty"`
	Category    string `json:"category,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ActionType  string `json:"actionType,omitempty"`
	Status      string `json:"status"`
}

const StatusScheduled = "scheduled"

// DefaultDuration applies when an action carries no usable estimate.
const DefaultDuration = 30

// FromAction builds a scheduled event from a suggested action.
func FromAction(a contact.Action, date, timeOfDay string) Event {
	duration := a.EstimatedDuration
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Event{
		ID:          "event-" + uuid.NewString(),
		ActionID:    a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        date,
		Time:        timeOfDay,
		Duration:    duration,
		Friend:      a.Friend,
		FriendID:    a.FriendID,
		Category:    a.Category,
		Icon:        a.Icon,
		ActionType:  a.ActionType,
		Status:      StatusScheduled,
	}
}

// Window returns the event's start and end instants. A missing or
// malformed time-of-day defaults to 12:00.
func (e Event) Window() (time.Time, time.Time) {
	day, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		day = time.Now().UTC().Truncate(24 * time.Hour)
	}
	hour, minute := 12, 0
	if t, err := time.Parse("15:04", e.Time); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	duration := e.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	return start, start.Add(time.Duration(duration) * time.Minute)
}
