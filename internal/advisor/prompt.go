package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/suggest"
)

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func friendSystemPrompt(friend contact.Contact) string {
	category := friend.Category
	if category == "" {
		category = contact.CategoryRegularFriends
	}
	return fmt.Sprintf(`You are an expert relationship advisor with deep knowledge of psychology, love languages, and friendship dynamics.

Friend Profile:
- Name: %s
- Love Language: %s
- Personality: %s
- Communication Style: %s
- Goals: %s
- Interests: %s
- Relationship Category: %s

Provide specific, actionable advice based on their psychological profile and love language preferences.`,
		friend.Name,
		orUnknown(friend.LoveLanguage),
		orUnknown(friend.PersonalityType),
		orUnknown(friend.CommunicationStyle),
		joinOr(friend.CurrentGoals, "None specified"),
		joinOr(friend.Interests, "Unknown"),
		category)
}

func coachSystemPrompt(user *profile.Profile) string {
	name := "the user"
	if user != nil && user.Name != "" {
		name = user.Name
	}
	return fmt.Sprintf(`You are an expert friendship coach helping %s become the ultimate energy-giver.
You understand personality types, love languages, and optimal relationship dynamics.
Provide specific, actionable suggestions based on the friend's profile and %s's strengths.
Format responses as JSON with specific suggestions.`, name, name)
}

func suggestionPrompt(friend contact.Contact, user *profile.Profile) string {
	var u profile.Profile
	if user != nil {
		u = *user
	}
	var b strings.Builder
	b.WriteString("FRIENDSHIP OPTIMIZATION REQUEST\n\n")
	fmt.Fprintf(&b, "USER PROFILE (%s):\n", orUnknown(u.Name))
	fmt.Fprintf(&b, "- Role: %s\n", orUnknown(u.Role))
	fmt.Fprintf(&b, "- Personality: %s %s\n", u.PersonalityType, u.EnergyStyle)
	fmt.Fprintf(&b, "- Giving Style: %s\n", orUnknown(u.GivingStyle))
	fmt.Fprintf(&b, "- Core Strengths: %s\n", joinOr(u.CoreStrengths, "Unknown"))
	fmt.Fprintf(&b, "- Business Expertise: %s\n", joinOr(u.BusinessExpertise, "Unknown"))
	fmt.Fprintf(&b, "- Natural Giving Methods: %s\n", joinOr(u.NaturalGivingMethods, "Unknown"))
	fmt.Fprintf(&b, "- Preferred Interactions: %s\n\n", joinOr(u.PreferredInteractionTypes, "Unknown"))

	fmt.Fprintf(&b, "FRIEND PROFILE (%s):\n", friend.Name)
	fmt.Fprintf(&b, "- Category: %s\n", orUnknown(friend.Category))
	fmt.Fprintf(&b, "- Love Language: %s\n", orUnknown(friend.LoveLanguage))
	fmt.Fprintf(&b, "- Personality: %s %s\n", friend.PersonalityType, friend.EnergyStyle)
	fmt.Fprintf(&b, "- Communication Style: %s\n", orUnknown(friend.CommunicationStyle))
	fmt.Fprintf(&b, "- Current Goals: %s\n", joinOr(friend.CurrentGoals, "None specified"))
	fmt.Fprintf(&b, "- Challenges: %s\n", joinOr(friend.Challenges, "None specified"))
	fmt.Fprintf(&b, "- Interests: %s\n", joinOr(friend.Interests, "Unknown"))
	fmt.Fprintf(&b, "- Strengths: %s\n", joinOr(friend.Strengths, "Unknown"))
	fmt.Fprintf(&b, "- Preferred Contact: %s\n", orUnknown(friend.PreferredContactMethod))
	fmt.Fprintf(&b, "- Best Time to Connect: %s\n", orUnknown(friend.BestTimeToConnect))
	fmt.Fprintf(&b, "- Relationship Depth: %s\n", orUnknown(friend.RelationshipDepth))
	fmt.Fprintf(&b, "- Notes: %s\n\n", friend.Notes)

	lastInteraction := "No recent interaction"
	if friend.LastInteraction != nil {
		lastInteraction = friend.LastInteraction.Format("2006-01-02")
	}
	b.WriteString("CONTEXT:\n")
	fmt.Fprintf(&b, "- Last Interaction: %s\n", lastInteraction)
	fmt.Fprintf(&b, "- Focus Areas: %s\n", joinOr(u.FocusAreas, "Unknown"))
	fmt.Fprintf(&b, "- Relationship Goals: %s\n\n", u.RelationshipGoals)

	fmt.Fprintf(&b, "Please provide specific, actionable suggestions for how %s can be an amazing energy-giver to %s.\n\n", orUnknown(u.Name), friend.Name)
	b.WriteString(`Return JSON format:
{
  "immediateActions": ["..."],
  "weeklyTouchpoints": ["..."],
  "monthlyDeepening": ["..."],
  "giftIdeas": ["..."],
  "conversationStarters": ["..."],
  "supportOpportunities": ["..."],
  "connectionOpportunities": ["..."],
  "personalGrowth": ["..."],
  "energyOptimization": ["..."]
}`)
	return b.String()
}

func networkSystemPrompt(contacts []contact.Contact, user *profile.Profile) string {
	type summary struct {
		Name         string   `json:"name"`
		Category     string   `json:"category,omitempty"`
		LoveLanguage string   `json:"loveLanguage,omitempty"`
		Expertise    string   `json:"expertise,omitempty"`
		Goals        []string `json:"goals,omitempty"`
	}
	summaries := make([]summary, 0, len(contacts))
	for _, c := range contacts {
		summaries = append(summaries, summary{
			Name:         c.Name,
			Category:     c.Category,
			LoveLanguage: c.LoveLanguage,
			Expertise:    c.TheirExpertise,
			Goals:        c.CurrentGoals,
		})
	}
	composition, _ := json.MarshalIndent(summaries, "", "  ")
	goals := "Not specified"
	if user != nil && user.RelationshipGoals != "" {
		goals = user.RelationshipGoals
	}
	return fmt.Sprintf(`You are a network analysis expert specializing in relationship portfolio optimization.

Analyze this social network and provide strategic insights:
- Network size: %d contacts
- User goals: %s
- Network composition: %s

Provide 3-5 strategic insights about network optimization, collaboration opportunities, and relationship development priorities.`,
		len(contacts), goals, composition)
}

// parseSuggestions decodes a model response into the structured shape.
// Tolerates fenced code blocks around the JSON.
func parseSuggestions(content string) (suggest.Suggestions, bool) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	var s suggest.Suggestions
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
		return suggest.Suggestions{}, false
	}
	if len(s.ImmediateActions) == 0 && len(s.ConversationStarters) == 0 {
		return suggest.Suggestions{}, false
	}
	return s, true
}
