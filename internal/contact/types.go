package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Relationship categories. "Regular Friends" is the default for imported
// and manually added contacts.
const (
	CategoryInnerCircle    = "Inner Circle"
	CategoryRegularFriends = "Regular Friends"
	CategoryNetwork        = "Network"
	CategoryBusiness       = "Business"
)

var Categories = []string{
	CategoryInnerCircle, CategoryRegularFriends, CategoryNetwork, CategoryBusiness,
}

var LoveLanguages = []string{
	"Quality Time", "Words of Affirmation", "Acts of Service",
	"Physical Touch", "Receiving Gifts",
}

// Interaction is one logged touchpoint with a contact.
type Interaction struct {
	Date  time.Time `json:"date"`
	Type  string    `json:"type,omitempty"`
	Notes string    `json:"notes,omitempty"`
}

// Action is a suggested relationship action for a contact. Accepted
// actions become calendar events; the ID ties the two together.
type Action struct {
	ID                string    `json:"id"`
	Type              string    `json:"type,omitempty"`
	Priority          string    `json:"priority,omitempty"`
	Friend            string    `json:"friend,omitempty"`
	FriendID          string    `json:"friendId,omitempty"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	EstimatedDuration int       `json:"estimatedDuration,omitempty"` // minutes
	SuggestedDate     time.Time `json:"suggestedDate,omitempty"`
	Category          string    `json:"category,omitempty"`
	Icon              string    `json:"icon,omitempty"`
	ActionType        string    `json:"actionType,omitempty"`
}

// Contact is a friend profile. Most attributes are optional; the record
// is an accretion of whatever the user has filled in so far. Field names
// follow the stored JSON shape.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Category string `json:"category,omitempty"`
	Tier     string `json:"tier,omitempty"`

	LoveLanguage    string `json:"loveLanguage,omitempty"`
	PersonalityType string `json:"personalityType,omitempty"`
	EnergyStyle     string `json:"energyStyle,omitempty"`

	CurrentGoals []string `json:"currentGoals,omitempty"`
	Challenges   []string `json:"challenges,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`

	PreferredContactMethod string `json:"preferredContactMethod,omitempty"`
	BestTimeToConnect      string `json:"bestTimeToConnect,omitempty"`
	CommunicationStyle     string `json:"communicationStyle,omitempty"`

	// Free-text attributes filled in over time; the scheduler and
	// insight rules key off these when present.
	PersonalGoals         string `json:"personalGoals,omitempty"`
	ProfessionalGoals     string `json:"professionalGoals,omitempty"`
	CollaborationOpps     string `json:"collaborationOpps,omitempty"`
	TheirExpertise        string `json:"theirExpertise,omitempty"`
	ProfessionalInterests string `json:"professionalInterests,omitempty"`
	HowICanHelp           string `json:"howICanHelp,omitempty"`
	HowTheyCanHelp        string `json:"howTheyCanHelp,omitempty"`
	Hobbies               string `json:"hobbies,omitempty"`

	Notes              string        `json:"notes,omitempty"`
	LastInteraction    *time.Time    `json:"lastInteraction,omitempty"`
	LastContactDate    *time.Time    `json:"lastContactDate,omitempty"`
	InteractionHistory []Interaction `json:"interactionHistory,omitempty"`
	RelationshipDepth  string        `json:"relationshipDepth,omitempty"`

	SuggestedActions     []Action `json:"suggestedActions,omitempty"`
	CompletedSuggestions []string `json:"completedSuggestions,omitempty"`

	DateAdded   time.Time `json:"dateAdded,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// Normalize fills the defaults every stored contact carries. Imported and
// manually entered records pass through here before persistence, so the
// rest of the system can rely on id, name, category, tier and depth being
// set.
func Normalize(c Contact, now time.Time) Contact {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	if strings.TrimSpace(c.Name) == "" {
		c.Name = "Unknown"
	}
	if strings.TrimSpace(c.Category) == "" {
		c.Category = CategoryRegularFriends
	}
	if strings.TrimSpace(c.Tier) == "" {
		c.Tier = "free"
	}
	if strings.TrimSpace(c.RelationshipDepth) == "" {
		c.RelationshipDepth = "surface"
	}
	if c.DateAdded.IsZero() {
		c.DateAdded = now.UTC()
	}
	c.LastUpdated = now.UTC()
	return c
}
