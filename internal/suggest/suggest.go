// Package suggest generates relationship suggestions and action plans
// from contact profiles using rule-based heuristics. It needs no
// network and doubles as the fallback when the AI advisor is offline.
package suggest

import (
	"fmt"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

// Suggestions groups advice for one friendship by cadence and kind.
type Suggestions struct {
	ImmediateActions        []string `json:"immediateActions"`
	WeeklyTouchpoints       []string `json:"weeklyTouchpoints"`
	MonthlyDeepening        []string `json:"monthlyDeepening,omitempty"`
	GiftIdeas               []string `json:"giftIdeas"`
	ConversationStarters    []string `json:"conversationStarters"`
	SupportOpportunities    []string `json:"supportOpportunities"`
	ConnectionOpportunities []string `json:"connectionOpportunities,omitempty"`
	PersonalGrowth          []string `json:"personalGrowth,omitempty"`
	EnergyOptimization      []string `json:"energyOptimization,omitempty"`
}

// Offline builds suggestions from the contact's love language, goals,
// interests and challenges. Deterministic for a given contact.
func Offline(c contact.Contact, _ *profile.Profile) Suggestions {
	var s Suggestions

	switch c.LoveLanguage {
	case "Quality Time":
		s.ImmediateActions = append(s.ImmediateActions, "Schedule dedicated one-on-one time with them")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Regular coffee/call sessions")
		s.GiftIdeas = append(s.GiftIdeas, "Plan an experience together rather than buying something")
	case "Words of Affirmation":
		s.ImmediateActions = append(s.ImmediateActions, "Send encouraging message about their strengths")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Share positive feedback or recognition")
		s.GiftIdeas = append(s.GiftIdeas, "Write a heartfelt note or letter")
	case "Acts of Service":
		s.ImmediateActions = append(s.ImmediateActions, "Offer to help with a specific task")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Look for ways to make their life easier")
		s.GiftIdeas = append(s.GiftIdeas, "Do something helpful for them instead of buying gifts")
	case "Physical Touch":
		s.ImmediateActions = append(s.ImmediateActions, "Plan in-person meeting with warm greeting")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Make sure to include appropriate physical connection")
	case "Receiving Gifts":
		s.ImmediateActions = append(s.ImmediateActions, "Send thoughtful gift related to their interests")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Small thoughtful gestures or tokens")
		s.GiftIdeas = append(s.GiftIdeas, "Something personalized based on their hobbies")
	default:
		s.ImmediateActions = append(s.ImmediateActions, "Reach out and check how they're doing")
		s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Send regular friendly messages")
	}

	if len(c.CurrentGoals) > 0 {
		for _, goal := range c.CurrentGoals {
			s.ConversationStarters = append(s.ConversationStarters, fmt.Sprintf("How is your progress on %s?", goal))
			s.SupportOpportunities = append(s.SupportOpportunities, fmt.Sprintf("Offer support or resources for %s", goal))
		}
	} else {
		s.ConversationStarters = append(s.ConversationStarters,
			"What are you most excited about right now?",
			"What goals are you working toward?")
	}

	if len(c.Interests) > 0 {
		interests := c.Interests
		if len(interests) > 3 {
			interests = interests[:3]
		}
		for _, interest := range interests {
			s.ConversationStarters = append(s.ConversationStarters, fmt.Sprintf("What's new in %s that excites you?", interest))
			s.GiftIdeas = append(s.GiftIdeas, fmt.Sprintf("Something related to their %s interest", interest))
		}
	} else {
		s.ConversationStarters = append(s.ConversationStarters, "What hobbies have you been enjoying lately?")
	}

	if len(c.Challenges) > 0 {
		challenges := c.Challenges
		if len(challenges) > 2 {
			challenges = challenges[:2]
		}
		for _, challenge := range challenges {
			s.SupportOpportunities = append(s.SupportOpportunities, fmt.Sprintf("Ask how you can help with %s", challenge))
		}
	}

	s.ImmediateActions = append(s.ImmediateActions, "Send them something that made you think of them")
	s.WeeklyTouchpoints = append(s.WeeklyTouchpoints, "Regular check-ins at their preferred time")
	s.ConversationStarters = append(s.ConversationStarters,
		"Ask about their biggest win this week",
		"Share something you appreciate about them")

	return s
}

// Fallback is the generic suggestion set used when an AI response cannot
// be parsed into the structured shape.
func Fallback() Suggestions {
	return Suggestions{
		ImmediateActions: []string{
			"Connect with them this week",
			"Send a thoughtful message",
			"Share something relevant to their interests",
		},
		WeeklyTouchpoints:       []string{"Regular check-in based on their preferred method"},
		MonthlyDeepening:        []string{"Plan a deeper conversation or activity"},
		GiftIdeas:               []string{"Something personalized based on their profile"},
		ConversationStarters:    []string{"Ask about their current goals", "Discuss their interests"},
		SupportOpportunities:    []string{"Offer help with their mentioned challenges"},
		ConnectionOpportunities: []string{"Introduce relevant contacts"},
		PersonalGrowth:          []string{"Reflect on what you can learn from them"},
		EnergyOptimization:      []string{"Match their communication style and energy"},
	}
}
