package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/identity"
)

// SetupStep tracks progress through the profile setup wizard. The wizard
// advances strictly forward or backward one step at a time; completion is
// only reachable from the final step and requires a name.
type SetupStep string

const (
	StepBasics       SetupStep = "basics"
	StepStrengths    SetupStep = "strengths"
	StepGiving       SetupStep = "giving"
	StepOptimization SetupStep = "optimization"
)

var stepOrder = []SetupStep{StepBasics, StepStrengths, StepGiving, StepOptimization}

// Profile is the user's own record: identity linkage, psychological and
// style attributes, and AI optimization preferences. Field names follow
// the stored JSON shape, so records written by earlier deployments parse
// unchanged.
type Profile struct {
	ClerkUserID string `json:"clerkUserId,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`

	PersonalityType    string `json:"personalityType,omitempty"`
	EnergyStyle        string `json:"energyStyle,omitempty"`
	GivingStyle        string `json:"givingStyle,omitempty"`
	CommunicationStyle string `json:"communicationStyle,omitempty"`

	CoreStrengths     []string `json:"coreStrengths,omitempty"`
	BusinessExpertise []string `json:"businessExpertise,omitempty"`
	PersonalInterests []string `json:"personalInterests,omitempty"`

	PeakEnergyTimes           string   `json:"peakEnergyTimes,omitempty"`
	PreferredInteractionTypes []string `json:"preferredInteractionTypes,omitempty"`
	NaturalGivingMethods      []string `json:"naturalGivingMethods,omitempty"`
	RelationshipGoals         string   `json:"relationshipGoals,omitempty"`

	SuggestionFrequency string   `json:"suggestionFrequency,omitempty"`
	FocusAreas          []string `json:"focusAreas,omitempty"`
	PremiumFeatures     bool     `json:"premiumFeatures,omitempty"`

	SetupCompleted bool      `json:"setupCompleted"`
	SetupStep      SetupStep `json:"setupStep,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated,omitempty"`
}

const (
	DefaultRole      = "Business Mogul"
	DefaultFrequency = "weekly"
)

// Default synthesizes the initial profile for a first sign-in from the
// identity provider's user object.
func Default(user identity.User, now time.Time) Profile {
	return Profile{
		ClerkUserID:         strings.TrimSpace(user.ID),
		Email:               user.PrimaryEmail(),
		Name:                user.DisplayName(),
		Role:                DefaultRole,
		SuggestionFrequency: DefaultFrequency,
		SetupStep:           StepBasics,
		CreatedAt:           now.UTC(),
		LastUpdated:         now.UTC(),
	}
}

// Validate enforces the fields required before any persistence attempt.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Advance moves the wizard one step forward. Advancing past the final
// step completes setup; completing requires a name.
func (p *Profile) Advance() error {
	if p.SetupCompleted {
		return fmt.Errorf("setup already completed")
	}
	idx := stepIndex(p.SetupStep)
	if idx == 0 && strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if idx >= len(stepOrder)-1 {
		return p.Complete()
	}
	p.SetupStep = stepOrder[idx+1]
	return nil
}

// Back moves the wizard one step backward; it is a no-op on the first step.
func (p *Profile) Back() {
	idx := stepIndex(p.SetupStep)
	if idx > 0 {
		p.SetupStep = stepOrder[idx-1]
	}
}

// Complete marks setup as done.
func (p *Profile) Complete() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	p.SetupCompleted = true
	return nil
}

// Reopen puts a completed profile back into the wizard for editing.
func (p *Profile) Reopen() {
	p.SetupCompleted = false
	p.SetupStep = StepBasics
}

func stepIndex(step SetupStep) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return 0
}
