package suggest

import (
	"strings"
	"testing"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
)

var now = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func TestRecommendedFrequency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category string
		days     int
		priority string
	}{
		{contact.CategoryInnerCircle, 7, "high"},
		{contact.CategoryBusiness, 14, "high"},
		{contact.CategoryRegularFriends, 21, "medium"},
		{contact.CategoryNetwork, 60, "low"},
		{"", 30, "medium"},
		{"Acquaintance", 30, "medium"},
	}
	for _, tc := range cases {
		f := RecommendedFrequency(tc.category)
		if f.Days != tc.days || f.Priority != tc.priority {
			t.Errorf("%q: got %+v", tc.category, f)
		}
	}
}

func TestDaysSinceLastContactDefault(t *testing.T) {
	t.Parallel()

	if d := DaysSinceLastContact(contact.Contact{}, now); d != 30 {
		t.Errorf("days = %d, want 30 default", d)
	}
	if d := DaysSinceLastContact(contact.Contact{LastContactDate: daysAgo(10)}, now); d != 10 {
		t.Errorf("days = %d, want 10", d)
	}
}

func TestActionsOverdueContact(t *testing.T) {
	t.Parallel()

	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann", Category: contact.CategoryInnerCircle, LastContactDate: daysAgo(8)},
		{ID: "c2", Name: "Bo", Category: contact.CategoryInnerCircle, LastContactDate: daysAgo(2)},
	}
	actions := Actions(contacts, now)

	if !hasAction(actions, "contact-c1") {
		t.Error("overdue inner-circle contact should trigger an action")
	}
	if hasAction(actions, "contact-c2") {
		t.Error("recently contacted friend should not trigger an action")
	}
}

func TestActionsNoLastContactDateTriggersDefault(t *testing.T) {
	t.Parallel()

	// 30 default days >= 21-day cadence for Regular Friends.
	actions := Actions([]contact.Contact{{ID: "c1", Name: "Ann", Category: contact.CategoryRegularFriends}}, now)
	if !hasAction(actions, "contact-c1") {
		t.Error("missing last-contact date should count as 30 days")
	}
}

func TestActionsAnniversaryWindow(t *testing.T) {
	t.Parallel()

	inWindow := contact.Contact{ID: "c1", Name: "Ann", DateAdded: time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), LastContactDate: daysAgo(1)}
	outOfWindow := contact.Contact{ID: "c2", Name: "Bo", DateAdded: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), LastContactDate: daysAgo(1)}

	actions := Actions([]contact.Contact{inWindow, outOfWindow}, now)
	if !hasAction(actions, "anniversary-c1") {
		t.Error("anniversary within 30 days should trigger")
	}
	if hasAction(actions, "anniversary-c2") {
		t.Error("anniversary beyond 30 days should not trigger")
	}
}

func TestActionsGoalAndCollaboration(t *testing.T) {
	t.Parallel()

	c := contact.Contact{
		ID: "c1", Name: "Ann",
		PersonalGoals:     "grow the business",
		CollaborationOpps: "joint workshop",
		LastContactDate:   daysAgo(1),
	}
	actions := Actions([]contact.Contact{c}, now)

	support := findAction(actions, "support-c1")
	if support == nil || support.Priority != "high" {
		t.Fatalf("support action = %+v", support)
	}
	if !strings.Contains(support.Description, "grow the business") {
		t.Errorf("support description = %q", support.Description)
	}
	collab := findAction(actions, "collab-c1")
	if collab == nil || collab.EstimatedDuration != 90 {
		t.Fatalf("collab action = %+v", collab)
	}
}

func TestActionsLoveLanguageDeterministic(t *testing.T) {
	t.Parallel()

	c := contact.Contact{ID: "c1", Name: "Ann", LoveLanguage: "Receiving Gifts", LastContactDate: daysAgo(1)}
	first := findAction(Actions([]contact.Contact{c}, now), "love-c1")
	second := findAction(Actions([]contact.Contact{c}, now), "love-c1")
	if first == nil || second == nil {
		t.Fatal("love-language action missing")
	}
	if !first.SuggestedDate.Equal(second.SuggestedDate) {
		t.Errorf("suggested dates differ: %s vs %s", first.SuggestedDate, second.SuggestedDate)
	}
	if first.SuggestedDate.Before(now) || first.SuggestedDate.After(now.AddDate(0, 0, 14)) {
		t.Errorf("suggested date %s outside two-week window", first.SuggestedDate)
	}
}

func TestActionsNetworkReviewThreshold(t *testing.T) {
	t.Parallel()

	small := make([]contact.Contact, 4)
	for i := range small {
		small[i] = contact.Contact{ID: string(rune('a' + i)), Name: "X", LastContactDate: daysAgo(1)}
	}
	if hasAction(Actions(small, now), "network-analysis") {
		t.Error("network review should need at least 5 contacts")
	}

	large := append(small, contact.Contact{ID: "e", Name: "Y", LastContactDate: daysAgo(1)})
	if !hasAction(Actions(large, now), "network-analysis") {
		t.Error("network review missing for 5 contacts")
	}
}

func TestActionsSortedByPriority(t *testing.T) {
	t.Parallel()

	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann", Category: contact.CategoryNetwork, LastContactDate: daysAgo(90)},                 // low
		{ID: "c2", Name: "Bo", PersonalGoals: "ship the book", LastContactDate: daysAgo(1)},                      // high
		{ID: "c3", Name: "Cy", LoveLanguage: "Quality Time", LastContactDate: daysAgo(1)},                        // medium
	}
	actions := Actions(contacts, now)
	if len(actions) < 3 {
		t.Fatalf("actions = %+v", actions)
	}
	last := 4
	for _, a := range actions {
		rank := priorityRank(a.Priority)
		if rank > last {
			t.Fatalf("actions not sorted by priority: %+v", actions)
		}
		last = rank
	}
}

func TestIntroductionOpportunities(t *testing.T) {
	t.Parallel()

	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann", ProfessionalInterests: "Marketing and growth"},
		{ID: "c2", Name: "Bo", TheirExpertise: "marketing automation"},
		{ID: "c3", Name: "Cy", PersonalGoals: "build a business empire"},
		{ID: "c4", Name: "Di", PersonalGoals: "business coaching"},
	}
	intros := IntroductionOpportunities(contacts)

	if !hasIntro(intros, "Ann", "Bo", "professional synergy") {
		t.Errorf("missing professional synergy intro: %+v", intros)
	}
	if !hasIntro(intros, "Cy", "Di", "similar goals") {
		t.Errorf("missing similar goals intro: %+v", intros)
	}
}

func TestIntroductionOpportunitiesNone(t *testing.T) {
	t.Parallel()

	contacts := []contact.Contact{
		{ID: "c1", Name: "Ann"},
		{ID: "c2", Name: "Bo"},
	}
	if intros := IntroductionOpportunities(contacts); len(intros) != 0 {
		t.Errorf("intros = %+v, want none", intros)
	}
}

func hasAction(actions []contact.Action, id string) bool {
	return findAction(actions, id) != nil
}

func findAction(actions []contact.Action, id string) *contact.Action {
	for i := range actions {
		if actions[i].ID == id {
			return &actions[i]
		}
	}
	return nil
}

func hasIntro(intros []Intro, p1, p2, reason string) bool {
	for _, in := range intros {
		if in.Person1 == p1 && in.Person2 == p2 && in.Reason == reason {
			return true
		}
	}
	return false
}
