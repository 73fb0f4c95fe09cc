package schedule

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
)

// memoryEvents is an in-memory EventStore.
type memoryEvents struct {
	byUser map[string][]calendar.Event
	fail   bool
}

func newMemoryEvents() *memoryEvents {
	return &memoryEvents{byUser: make(map[string][]calendar.Event)}
}

func (m *memoryEvents) GetEvents(_ context.Context, userID string) []calendar.Event {
	return m.byUser[userID]
}

func (m *memoryEvents) SaveEvents(_ context.Context, userID string, events []calendar.Event) hybrid.SaveResult {
	if m.fail {
		return hybrid.SaveResult{Error: "store down"}
	}
	m.byUser[userID] = events
	return hybrid.SaveResult{Local: true, Remote: true}
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Send(_ context.Context, to, text string) error {
	r.messages = append(r.messages, to+": "+text)
	return nil
}

func newService(events EventStore, notifier *recordingNotifier) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if notifier == nil {
		return New(events, nil, log)
	}
	return New(events, notifier, log)
}

func TestScheduleAction(t *testing.T) {
	t.Parallel()

	store := newMemoryEvents()
	svc := newService(store, nil)
	action := contact.Action{ID: "contact-c1", Title: "Reach out to Ann", Friend: "Ann", FriendID: "c1", EstimatedDuration: 30}

	event, result, err := svc.Schedule(context.Background(), "u1", action, "2026-09-05", "15:00")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Local || !result.Remote {
		t.Errorf("result = %+v", result)
	}
	if event.ActionID != "contact-c1" || event.Date != "2026-09-05" || event.Time != "15:00" {
		t.Errorf("event = %+v", event)
	}
	if got := store.byUser["u1"]; len(got) != 1 {
		t.Errorf("stored events = %+v", got)
	}
}

func TestScheduleDuplicateActionRejected(t *testing.T) {
	t.Parallel()

	store := newMemoryEvents()
	svc := newService(store, nil)
	action := contact.Action{ID: "contact-c1", Title: "Reach out to Ann"}

	if _, _, err := svc.Schedule(context.Background(), "u1", action, "2026-09-05", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Schedule(context.Background(), "u1", action, "2026-09-06", ""); err == nil {
		t.Fatal("second scheduling of the same action should fail")
	}
	if got := store.byUser["u1"]; len(got) != 1 {
		t.Errorf("stored events = %+v", got)
	}
}

func TestScheduleDefaults(t *testing.T) {
	t.Parallel()

	svc := newService(newMemoryEvents(), nil)
	suggested := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	action := contact.Action{ID: "a1", Title: "Coffee", SuggestedDate: suggested}

	event, _, err := svc.Schedule(context.Background(), "u1", action, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if event.Date != "2026-09-10" || event.Time != DefaultTime {
		t.Errorf("event = %+v", event)
	}
}

func TestScheduleInvalidInput(t *testing.T) {
	t.Parallel()

	svc := newService(newMemoryEvents(), nil)
	action := contact.Action{ID: "a1", Title: "Coffee"}

	if _, _, err := svc.Schedule(context.Background(), "u1", action, "tomorrow", ""); err == nil {
		t.Error("bad date should fail")
	}
	if _, _, err := svc.Schedule(context.Background(), "u1", action, "2026-09-05", "3pm"); err == nil {
		t.Error("bad time should fail")
	}
}

func TestSchedulePersistFailure(t *testing.T) {
	t.Parallel()

	store := newMemoryEvents()
	store.fail = true
	svc := newService(store, nil)

	if _, _, err := svc.Schedule(context.Background(), "u1", contact.Action{ID: "a1", Title: "Coffee"}, "2026-09-05", ""); err == nil {
		t.Fatal("failed persistence should surface an error")
	}
}

func TestSuggestedFiltersScheduled(t *testing.T) {
	t.Parallel()

	store := newMemoryEvents()
	svc := newService(store, nil)
	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann", Category: contact.CategoryInnerCircle}, // overdue by default
	}

	before := svc.Suggested(context.Background(), "u1", contacts)
	target := findByID(before, "contact-c1")
	if target == nil {
		t.Fatalf("expected reach-out action, got %+v", before)
	}

	if _, _, err := svc.Schedule(context.Background(), "u1", *target, "2026-09-05", ""); err != nil {
		t.Fatal(err)
	}

	after := svc.Suggested(context.Background(), "u1", contacts)
	if findByID(after, "contact-c1") != nil {
		t.Error("scheduled action should be filtered from suggestions")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	store := newMemoryEvents()
	svc := newService(store, nil)
	event, _, err := svc.Schedule(context.Background(), "u1", contact.Action{ID: "a1", Title: "Coffee"}, "2026-09-05", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Remove(context.Background(), "u1", event.ID); err != nil {
		t.Fatal(err)
	}
	if got := svc.Events(context.Background(), "u1"); len(got) != 0 {
		t.Errorf("events = %+v", got)
	}
	if _, err := svc.Remove(context.Background(), "u1", "missing"); err == nil {
		t.Error("removing unknown event should fail")
	}
}

func TestRemind(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	svc := newService(newMemoryEvents(), notifier)
	event := calendar.Event{Title: "Coffee", Date: "2026-09-05", Time: "10:00", Friend: "Ann"}

	if err := svc.Remind(context.Background(), "12345", event); err != nil {
		t.Fatal(err)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "Coffee") {
		t.Errorf("messages = %v", notifier.messages)
	}

	// nil notifier is a no-op
	quiet := newService(newMemoryEvents(), nil)
	if err := quiet.Remind(context.Background(), "12345", event); err != nil {
		t.Fatal(err)
	}
}

func findByID(actions []contact.Action, id string) *contact.Action {
	for i := range actions {
		if actions[i].ID == id {
			return &actions[i]
		}
	}
	return nil
}
