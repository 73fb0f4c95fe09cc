package suggest

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
)

// Frequency is the recommended contact cadence for a category.
type Frequency struct {
	Days     int
	Priority string
}

// RecommendedFrequency maps a relationship category to its cadence.
func RecommendedFrequency(category string) Frequency {
	switch category {
	case contact.CategoryInnerCircle:
		return Frequency{Days: 7, Priority: "high"}
	case contact.CategoryBusiness:
		return Frequency{Days: 14, Priority: "high"}
	case contact.CategoryRegularFriends:
		return Frequency{Days: 21, Priority: "medium"}
	case contact.CategoryNetwork:
		return Frequency{Days: 60, Priority: "low"}
	default:
		return Frequency{Days: 30, Priority: "medium"}
	}
}

// DaysSinceLastContact returns full days since the last contact date,
// or 30 when no date is recorded.
func DaysSinceLastContact(c contact.Contact, now time.Time) int {
	if c.LastContactDate == nil {
		return 30
	}
	return int(now.Sub(*c.LastContactDate).Hours() / 24)
}

// Intro pairs two contacts that could be introduced to each other.
type Intro struct {
	Person1 string `json:"person1"`
	Person2 string `json:"person2"`
	Reason  string `json:"reason"`
}

// IntroductionOpportunities scans all contact pairs for professional
// synergies and aligned goals.
func IntroductionOpportunities(contacts []contact.Contact) []Intro {
	var out []Intro
	for i := 0; i < len(contacts); i++ {
		for j := i + 1; j < len(contacts); j++ {
			a, b := contacts[i], contacts[j]

			if a.ProfessionalInterests != "" && b.TheirExpertise != "" {
				first := strings.Fields(strings.ToLower(b.TheirExpertise))
				if len(first) > 0 && strings.Contains(strings.ToLower(a.ProfessionalInterests), first[0]) {
					out = append(out, Intro{Person1: a.Name, Person2: b.Name, Reason: "professional synergy"})
				}
			}

			if a.PersonalGoals != "" && b.PersonalGoals != "" {
				goalsA := strings.ToLower(a.PersonalGoals)
				goalsB := strings.ToLower(b.PersonalGoals)
				if strings.Contains(goalsA, "business") && strings.Contains(goalsB, "business") {
					out = append(out, Intro{Person1: a.Name, Person2: b.Name, Reason: "similar goals"})
				}
			}
		}
	}
	return out
}

// Actions builds the prioritized action plan for the whole network:
// overdue-contact reminders, upcoming friendship anniversaries, goal
// support, collaboration follow-ups, love-language actions, and network
// level strategy items. Sorted by priority then suggested date.
func Actions(contacts []contact.Contact, now time.Time) []contact.Action {
	var actions []contact.Action

	for _, c := range contacts {
		freq := RecommendedFrequency(c.Category)
		days := DaysSinceLastContact(c, now)
		if days >= freq.Days {
			actions = append(actions, contact.Action{
				ID:                "contact-" + c.ID,
				Type:              "communication",
				Priority:          freq.Priority,
				Friend:            c.Name,
				FriendID:          c.ID,
				Title:             fmt.Sprintf("Reach out to %s", c.Name),
				Description:       fmt.Sprintf("It's been %d days since your last contact. %s", days, contactSuggestion(c)),
				EstimatedDuration: 30,
				SuggestedDate:     now.AddDate(0, 0, 1),
				Category:          "Relationship Maintenance",
				Icon:              "💬",
				ActionType:        "contact",
			})
		}

		if a, ok := anniversaryAction(c, now); ok {
			actions = append(actions, a)
		}

		if c.PersonalGoals != "" {
			actions = append(actions, contact.Action{
				ID:                "support-" + c.ID,
				Type:              "support",
				Priority:          "high",
				Friend:            c.Name,
				FriendID:          c.ID,
				Title:             fmt.Sprintf("Support %s's goals", c.Name),
				Description:       fmt.Sprintf("Check in on their progress: %s. %s", c.PersonalGoals, supportSuggestion(c)),
				EstimatedDuration: 45,
				SuggestedDate:     now.AddDate(0, 0, 7),
				Category:          "Goal Support",
				Icon:              "🎯",
				ActionType:        "support",
			})
		}

		if c.CollaborationOpps != "" {
			actions = append(actions, contact.Action{
				ID:                "collab-" + c.ID,
				Type:              "collaboration",
				Priority:          "high",
				Friend:            c.Name,
				FriendID:          c.ID,
				Title:             fmt.Sprintf("Explore collaboration with %s", c.Name),
				Description:       fmt.Sprintf("Discuss potential opportunities: %s", c.CollaborationOpps),
				EstimatedDuration: 90,
				SuggestedDate:     now.AddDate(0, 0, 14),
				Category:          "Business Development",
				Icon:              "🤝",
				ActionType:        "collaborate",
			})
		}

		if a, ok := loveLanguageAction(c, now); ok {
			actions = append(actions, a)
		}
	}

	actions = append(actions, networkActions(contacts, now)...)

	sort.SliceStable(actions, func(i, j int) bool {
		pi, pj := priorityRank(actions[i].Priority), priorityRank(actions[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return actions[i].SuggestedDate.Before(actions[j].SuggestedDate)
	})
	return actions
}

func priorityRank(p string) int {
	switch p {
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}

// anniversaryAction fires when this year's friendship anniversary falls
// within the next 30 days.
func anniversaryAction(c contact.Contact, now time.Time) (contact.Action, bool) {
	if c.DateAdded.IsZero() {
		return contact.Action{}, false
	}
	anniversary := time.Date(now.Year(), c.DateAdded.Month(), c.DateAdded.Day(), 0, 0, 0, 0, now.Location())
	if !anniversary.After(now) || anniversary.After(now.AddDate(0, 0, 30)) {
		return contact.Action{}, false
	}
	loveLanguage := c.LoveLanguage
	if loveLanguage == "" {
		loveLanguage = "Unknown"
	}
	return contact.Action{
		ID:                "anniversary-" + c.ID,
		Type:              "celebration",
		Priority:          "medium",
		Friend:            c.Name,
		FriendID:          c.ID,
		Title:             fmt.Sprintf("Friendship anniversary with %s", c.Name),
		Description:       fmt.Sprintf("Celebrate your friendship! Consider a thoughtful message or gift based on their love language: %s", loveLanguage),
		EstimatedDuration: 60,
		SuggestedDate:     anniversary,
		Category:          "Special Occasions",
		Icon:              "🎉",
		ActionType:        "celebrate",
	}, true
}

func contactSuggestion(c contact.Contact) string {
	if strings.Contains(c.CommunicationStyle, "Direct") {
		return "Send a direct message about something specific."
	}
	switch c.LoveLanguage {
	case "Quality Time":
		return "Suggest meeting in person or having a video call."
	case "Words of Affirmation":
		return "Send an encouraging message about their recent achievements."
	}
	return "Choose a communication method that matches their style."
}

func supportSuggestion(c contact.Contact) string {
	if c.LoveLanguage == "Acts of Service" {
		return "Offer practical help with their goals."
	}
	if c.TheirExpertise != "" {
		return "Ask thoughtful questions about their area of expertise."
	}
	return "Show genuine interest in their progress and offer encouragement."
}

type loveLanguageTemplate struct {
	title       string
	description string
	duration    int
	icon        string
}

func loveLanguageAction(c contact.Contact, now time.Time) (contact.Action, bool) {
	var tmpl loveLanguageTemplate
	switch c.LoveLanguage {
	case "Quality Time":
		tmpl = loveLanguageTemplate{
			title:       fmt.Sprintf("Quality time with %s", c.Name),
			description: "Plan focused one-on-one time. Their love language is Quality Time - they value undivided attention.",
			duration:    120,
			icon:        "⏰",
		}
	case "Words of Affirmation":
		tmpl = loveLanguageTemplate{
			title:       fmt.Sprintf("Send encouragement to %s", c.Name),
			description: "Write a thoughtful message highlighting their strengths. Their love language is Words of Affirmation.",
			duration:    15,
			icon:        "💬",
		}
	case "Acts of Service":
		tmpl = loveLanguageTemplate{
			title:       fmt.Sprintf("Help %s with something", c.Name),
			description: "Offer practical assistance. Their love language is Acts of Service - they feel loved through helpful actions.",
			duration:    60,
			icon:        "🛠️",
		}
	case "Physical Touch":
		tmpl = loveLanguageTemplate{
			title:       fmt.Sprintf("In-person meetup with %s", c.Name),
			description: "Plan to meet in person. Their love language is Physical Touch - they value physical presence and hugs.",
			duration:    90,
			icon:        "🤗",
		}
	case "Receiving Gifts":
		interests := c.Hobbies
		if interests == "" && len(c.Interests) > 0 {
			interests = strings.Join(c.Interests, ", ")
		}
		if interests == "" {
			interests = "their personal interests"
		}
		tmpl = loveLanguageTemplate{
			title:       fmt.Sprintf("Thoughtful gift for %s", c.Name),
			description: fmt.Sprintf("Plan a meaningful gift based on their interests: %s.", interests),
			duration:    45,
			icon:        "🎁",
		}
	default:
		return contact.Action{}, false
	}

	return contact.Action{
		ID:                "love-" + c.ID,
		Type:              "love-language",
		Priority:          "medium",
		Friend:            c.Name,
		FriendID:          c.ID,
		Title:             tmpl.title,
		Description:       tmpl.description,
		EstimatedDuration: tmpl.duration,
		SuggestedDate:     now.AddDate(0, 0, dateJitterDays(c.ID)),
		Category:          "Love Language",
		Icon:              tmpl.icon,
		ActionType:        "love-language",
	}, true
}

// dateJitterDays spreads love-language actions over the next two weeks.
// Hash-derived so repeated generations land on the same date.
func dateJitterDays(contactID string) int {
	h := fnv.New32a()
	h.Write([]byte(contactID))
	return int(h.Sum32()%14) + 1
}

func networkActions(contacts []contact.Contact, now time.Time) []contact.Action {
	var actions []contact.Action

	if len(contacts) >= 5 {
		actions = append(actions, contact.Action{
			ID:                "network-analysis",
			Type:              "strategy",
			Priority:          "medium",
			Friend:            "Network Analysis",
			FriendID:          "network",
			Title:             "Monthly network strategy review",
			Description:       "Review your relationship portfolio balance and identify optimization opportunities.",
			EstimatedDuration: 30,
			SuggestedDate:     now.AddDate(0, 0, 30),
			Category:          "Strategic Planning",
			Icon:              "📊",
			ActionType:        "analysis",
		})
	}

	if intros := IntroductionOpportunities(contacts); len(intros) > 0 {
		actions = append(actions, contact.Action{
			ID:                "facilitate-intros",
			Type:              "networking",
			Priority:          "high",
			Friend:            "Multiple Friends",
			FriendID:          "multiple",
			Title:             "Facilitate strategic introductions",
			Description:       fmt.Sprintf("You have %d potential introduction opportunities that could create mutual value.", len(intros)),
			EstimatedDuration: 60,
			SuggestedDate:     now.AddDate(0, 0, 7),
			Category:          "Network Building",
			Icon:              "🌐",
			ActionType:        "introduce",
		})
	}

	return actions
}
