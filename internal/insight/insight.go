// Package insight analyzes a contact portfolio and produces strategic
// observations about its balance, diversity and data completeness.
package insight

import (
	"fmt"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
)

// Insight is one strategic observation with concrete follow-ups.
type Insight struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Priority       string            `json:"priority"`
	Insight        string            `json:"insight"`
	Recommendation string            `json:"recommendation"`
	Actions        []string          `json:"actions,omitempty"`
	Metrics        map[string]string `json:"metrics,omitempty"`
}

// NetworkAnalysis is the aggregate view of the portfolio.
type NetworkAnalysis struct {
	TotalFriends             int            `json:"totalFriends"`
	Categories               map[string]int `json:"categories"`
	LoveLanguageDistribution map[string]int `json:"loveLanguageDistribution"`
	NetworkValue             int            `json:"networkValue"`
}

// Analyze runs every insight rule over the contact set. Returns no
// insights for an empty set.
func Analyze(contacts []contact.Contact) []Insight {
	if len(contacts) == 0 {
		return nil
	}
	var out []Insight
	if in, ok := categoryBalance(contacts); ok {
		out = append(out, in)
	}
	out = append(out, communicationPatterns(contacts)...)
	if in, ok := loveLanguageCoverage(contacts); ok {
		out = append(out, in)
	}
	out = append(out, goalAlignment(contacts)...)
	out = append(out, networkingPotential(contacts)...)
	out = append(out, relationshipHealth(contacts)...)
	return out
}

func categoryFor(c contact.Contact) string {
	if c.Category == "" {
		return contact.CategoryRegularFriends
	}
	return c.Category
}

func categoryBalance(contacts []contact.Contact) (Insight, bool) {
	categories := map[string]int{}
	for _, c := range contacts {
		categories[categoryFor(c)]++
	}
	total := len(contacts)
	innerCircle := categories[contact.CategoryInnerCircle]
	business := categories[contact.CategoryBusiness]
	network := categories[contact.CategoryNetwork]

	innerCirclePct := float64(innerCircle) / float64(total) * 100
	businessPct := float64(business) / float64(total) * 100

	in := Insight{
		ID:       "category-balance",
		Type:     "balance",
		Title:    "Relationship Portfolio Balance",
		Priority: "high",
		Metrics: map[string]string{
			"Inner Circle":    fmt.Sprintf("%d (%.1f%%)", innerCircle, innerCirclePct),
			"Business":        fmt.Sprintf("%d (%.1f%%)", business, businessPct),
			"Network":         fmt.Sprintf("%d (%.1f%%)", network, float64(network)/float64(total)*100),
			"Regular Friends": fmt.Sprintf("%d (%.1f%%)", categories[contact.CategoryRegularFriends], float64(categories[contact.CategoryRegularFriends])/float64(total)*100),
		},
	}

	switch {
	case innerCirclePct < 10 && total > 5:
		in.Insight = fmt.Sprintf("Your Inner Circle represents only %.1f%% of your network. Research shows the most successful people have 8-12 deep relationships.", innerCirclePct)
		in.Recommendation = "Prioritize deepening relationships with your closest friends. Quality over quantity creates the strongest network ROI."
		in.Actions = []string{
			"Identify 3-5 Regular Friends to promote to Inner Circle",
			"Schedule deeper one-on-one time with potential Inner Circle friends",
			"Share more personal goals and challenges to build deeper trust",
		}
	case businessPct < 20 && total > 10:
		in.Insight = fmt.Sprintf("Business relationships represent only %.1f%% of your network. Professional relationships often generate the highest career and financial opportunities.", businessPct)
		in.Recommendation = "Expand your professional network strategically. Target industry leaders, mentors, and potential collaborators."
		in.Actions = []string{
			"Attend 2-3 industry networking events this month",
			"Reach out to 5 professionals in your field or target industries",
			"Convert some Network connections to Business relationships",
		}
	default:
		return Insight{}, false
	}
	return in, true
}

func communicationPatterns(contacts []contact.Contact) []Insight {
	styles := map[string]int{}
	for _, c := range contacts {
		if c.CommunicationStyle != "" {
			styles[c.CommunicationStyle]++
		}
	}
	totalWithStyles := 0
	dominantStyle, dominantCount := "", 0
	for style, count := range styles {
		totalWithStyles += count
		if count > dominantCount || (count == dominantCount && style < dominantStyle) {
			dominantStyle, dominantCount = style, count
		}
	}
	if totalWithStyles <= 3 {
		return nil
	}
	dominantPct := float64(dominantCount) / float64(totalWithStyles) * 100
	if dominantPct <= 60 {
		return nil
	}
	return []Insight{{
		ID:             "communication-diversity",
		Type:           "communication",
		Title:          "Communication Style Diversity",
		Priority:       "medium",
		Insight:        fmt.Sprintf("%.1f%% of your network shares the same communication style (%s). This creates an echo chamber effect.", dominantPct, dominantStyle),
		Recommendation: "Diversify your network with people who have different communication styles to expand your perspective and influence.",
		Actions: []string{
			"Actively seek friendships with people who communicate differently",
			"Practice adapting your communication style to match others",
			"Join groups that attract diverse communication styles",
		},
	}}
}

func loveLanguageCoverage(contacts []contact.Contact) (Insight, bool) {
	withLanguage := 0
	for _, c := range contacts {
		if c.LoveLanguage != "" {
			withLanguage++
		}
	}
	total := len(contacts)
	if float64(withLanguage) >= float64(total)*0.3 {
		return Insight{}, false
	}
	return Insight{
		ID:             "love-language-data",
		Type:           "optimization",
		Title:          "Love Language Intelligence Gap",
		Priority:       "high",
		Insight:        fmt.Sprintf("Only %d of %d friends have love language data. This represents a massive optimization opportunity.", withLanguage, total),
		Recommendation: "Learn each friend's love language to dramatically improve relationship quality and impact.",
		Metrics: map[string]string{
			"Documented":      fmt.Sprintf("%d", withLanguage),
			"Missing":         fmt.Sprintf("%d", total-withLanguage),
			"Completion Rate": fmt.Sprintf("%.1f%%", float64(withLanguage)/float64(total)*100),
		},
	}, true
}

func goalAlignment(contacts []contact.Contact) []Insight {
	professional := 0
	for _, c := range contacts {
		if c.ProfessionalGoals != "" {
			professional++
		}
	}
	if professional < 2 {
		return nil
	}
	return []Insight{{
		ID:             "goal-synergies",
		Type:           "collaboration",
		Title:          "Hidden Goal Synergies",
		Priority:       "high",
		Insight:        fmt.Sprintf("%d friends have shared their professional goals. There are likely hidden synergies and collaboration opportunities.", professional),
		Recommendation: "Map overlapping goals and facilitate introductions between friends working toward similar outcomes.",
	}}
}

func networkingPotential(contacts []contact.Contact) []Insight {
	expertise := 0
	for _, c := range contacts {
		if c.TheirExpertise != "" {
			expertise++
		}
	}
	if expertise < 3 {
		return nil
	}
	return []Insight{{
		ID:             "expertise-map",
		Type:           "networking",
		Title:          "Untapped Expertise Network",
		Priority:       "medium",
		Insight:        fmt.Sprintf("Your network contains %d documented areas of expertise. This represents massive untapped value.", expertise),
		Recommendation: "Create an expertise map and connect friends whose skills and needs complement each other.",
	}}
}

func relationshipHealth(contacts []contact.Contact) []Insight {
	incomplete := 0
	for _, c := range contacts {
		if c.LoveLanguage == "" || c.PersonalGoals == "" || c.HowICanHelp == "" {
			incomplete++
		}
	}
	if float64(incomplete) <= float64(len(contacts))*0.5 {
		return nil
	}
	return []Insight{{
		ID:             "profile-completeness",
		Type:           "health",
		Title:          "Friend Profile Completeness",
		Priority:       "low",
		Insight:        fmt.Sprintf("%d of %d friend profiles are incomplete. Missing data limits relationship optimization potential.", incomplete, len(contacts)),
		Recommendation: "Gradually complete friend profiles through natural conversations. Each data point unlocks better strategic insights.",
	}}
}

// Summarize builds the aggregate portfolio view.
func Summarize(contacts []contact.Contact) NetworkAnalysis {
	analysis := NetworkAnalysis{
		TotalFriends:             len(contacts),
		Categories:               map[string]int{},
		LoveLanguageDistribution: map[string]int{},
		NetworkValue:             NetworkValue(contacts),
	}
	for _, c := range contacts {
		analysis.Categories[categoryFor(c)]++
		if c.LoveLanguage != "" {
			analysis.LoveLanguageDistribution[c.LoveLanguage]++
		}
	}
	return analysis
}

// NetworkValue scores the portfolio: base points per friend, bonuses for
// documented attributes, extra weight for close and business ties.
func NetworkValue(contacts []contact.Contact) int {
	score := 0
	for _, c := range contacts {
		score += 10
		if c.LoveLanguage != "" {
			score += 15
		}
		if c.PersonalGoals != "" {
			score += 10
		}
		if c.TheirExpertise != "" {
			score += 20
		}
		if c.HowICanHelp != "" {
			score += 15
		}
		switch c.Category {
		case contact.CategoryInnerCircle:
			score += 30
		case contact.CategoryBusiness:
			score += 25
		}
	}
	return score
}
