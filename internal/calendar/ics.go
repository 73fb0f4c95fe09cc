package calendar

import (
	"strings"
	"time"
)

const icsStamp = "20060102T150405Z"

// ICS renders the event as a single-VEVENT iCalendar document suitable
// for import into external calendar apps.
func (e Event) ICS(now time.Time) string {
	start, end := e.Window()
	summary := e.Title
	if e.Icon != "" {
		summary = e.Icon + " " + summary
	}
	description := e.Description
	if e.Friend != "" {
		if description != "" {
			description += "\n\n"
		}
		description += "Friend: " + e.Friend
	}

	var b strings.Builder
	for _, line := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//FriendSync//Relationship Calendar//EN",
		"BEGIN:VEVENT",
		"UID:" + e.ID + "@friendsync.app",
		"DTSTAMP:" + now.UTC().Format(icsStamp),
		"DTSTART:" + start.Format(icsStamp),
		"DTEND:" + end.Format(icsStamp),
		"SUMMARY:" + escapeICS(summary),
		"DESCRIPTION:" + escapeICS(description),
		"CATEGORIES:" + escapeICS(e.Category),
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return b.String()
}

// Filename returns a safe download name for the rendered file.
func (e Event) Filename() string {
	name := strings.TrimSpace(e.Title)
	if name == "" {
		name = "event"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-") + ".ics"
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
