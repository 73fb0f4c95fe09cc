package mastermind

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/localstore"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

func newService(t *testing.T) (*Service, *localstore.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := localstore.New(localstore.NewMemoryKV(), log)
	svc := NewService(store, store, log)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestPotentialsInnerCircle(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann", Category: contact.CategoryInnerCircle},
		{ID: "c2", Name: "Bo", Category: contact.CategoryNetwork},
	}
	got := svc.Potentials(contacts)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("potentials = %+v", got)
	}
}

func TestPotentialsDesireFlag(t *testing.T) {
	t.Parallel()

	svc, store := newService(t)
	var d contact.Desires
	d.RelationshipGoals.MastermindPotential = true
	store.WriteDesires("c2", d)

	contacts := []contact.Contact{
		{ID: "c2", Name: "Bo", Category: contact.CategoryNetwork},
	}
	got := svc.Potentials(contacts)
	if len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("potentials = %+v", got)
	}
}

func TestPotentialsLongTermGoals(t *testing.T) {
	t.Parallel()

	svc, store := newService(t)
	var d contact.Desires
	d.RelationshipGoals.LongTerm = []string{"Build an Investment portfolio together"}
	store.WriteDesires("c3", d)

	var plain contact.Desires
	plain.RelationshipGoals.LongTerm = []string{"Go hiking more"}
	store.WriteDesires("c4", plain)

	contacts := []contact.Contact{
		{ID: "c3", Name: "Cy", Category: contact.CategoryNetwork},
		{ID: "c4", Name: "Di", Category: contact.CategoryNetwork},
	}
	got := svc.Potentials(contacts)
	if len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("potentials = %+v", got)
	}
}

func TestCreateAndList(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann"},
		{ID: "c2", Name: "Bo"},
	}
	creator := &profile.Profile{ClerkUserID: "u1", Name: "Morten"}

	group, err := svc.Create("Builders Circle", "Ship things together", []string{"c1", "c2"}, contacts, creator)
	if err != nil {
		t.Fatal(err)
	}
	if group.Status != StatusForming || len(group.Members) != 2 {
		t.Fatalf("group = %+v", group)
	}

	groups := svc.List()
	if len(groups) != 1 || groups[0].Name != "Builders Circle" {
		t.Fatalf("list = %+v", groups)
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	contacts := []contact.Contact{{ID: "c1", Name: "Ann"}, {ID: "c2", Name: "Bo"}}

	if _, err := svc.Create("", "", []string{"c1", "c2"}, contacts, nil); err == nil {
		t.Error("empty name should fail")
	}
	if _, err := svc.Create("Solo", "", []string{"c1"}, contacts, nil); err == nil {
		t.Error("one member should fail")
	}
	if _, err := svc.Create("Ghost", "", []string{"c1", "nope"}, contacts, nil); err == nil {
		t.Error("unknown member should fail")
	}
}

func TestSuggestNames(t *testing.T) {
	t.Parallel()

	members := []contact.Contact{
		{ID: "c1", Interests: []string{"Real Estate"}},
		{ID: "c2", Interests: []string{"Investment"}},
	}
	names := SuggestNames(members)
	if len(names) != 1 || names[0] != "Real Estate Investment Mastermind" {
		t.Fatalf("names = %v", names)
	}

	members = append(members, contact.Contact{ID: "c3", Interests: []string{"Technology", "Entrepreneurship"}})
	names = SuggestNames(members)
	want := map[string]bool{
		"Real Estate Investment Mastermind":    true,
		"Tech Entrepreneur Collective":         true,
		"High-Performance Business Mastermind": true,
		"Wealth Building Circle":               true,
	}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected name %q", n)
		}
	}
}
