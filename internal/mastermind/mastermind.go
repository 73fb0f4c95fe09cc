// Package mastermind identifies contacts with mastermind-group
// potential and manages the groups built from them.
package mastermind

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

// Group is a mastermind group in the forming stage.
type Group struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Purpose string            `json:"purpose,omitempty"`
	Members []contact.Contact `json:"members"`
	Creator *profile.Profile  `json:"creator,omitempty"`
	Created time.Time         `json:"created"`
	Status  string            `json:"status"`
}

const StatusForming = "forming"

// DesireReader looks up the deeper-relationship record for a contact.
type DesireReader interface {
	ReadDesires(contactID string) *contact.Desires
}

// GroupStore persists the group list.
type GroupStore interface {
	ReadGroups() []json.RawMessage
	WriteGroups(groups []json.RawMessage) bool
}

type Service struct {
	desires DesireReader
	groups  GroupStore
	log     *slog.Logger
	now     func() time.Time
}

func NewService(desires DesireReader, groups GroupStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		desires: desires,
		groups:  groups,
		log:     log.With(slog.String("component", "mastermind")),
		now:     time.Now,
	}
}

// Potentials filters contacts worth inviting to a mastermind: anyone
// flagged in their desires record, anyone in the Inner Circle, and
// anyone whose long-term goals mention business, investment or
// mastermind themes.
func (s *Service) Potentials(contacts []contact.Contact) []contact.Contact {
	var out []contact.Contact
	for _, c := range contacts {
		d := s.desires.ReadDesires(c.ID)
		if d == nil {
			if c.Category == contact.CategoryInnerCircle {
				out = append(out, c)
			}
			continue
		}
		if d.RelationshipGoals.MastermindPotential ||
			c.Category == contact.CategoryInnerCircle ||
			hasMastermindGoal(d.RelationshipGoals.LongTerm) {
			out = append(out, c)
		}
	}
	return out
}

func hasMastermindGoal(goals []string) bool {
	for _, goal := range goals {
		if strings.Contains(goal, "Business") ||
			strings.Contains(goal, "Investment") ||
			strings.Contains(goal, "Mastermind") {
			return true
		}
	}
	return false
}

// Create forms a new group from the selected member ids and appends it
// to the stored list. Needs at least two members.
func (s *Service) Create(name, purpose string, memberIDs []string, contacts []contact.Contact, creator *profile.Profile) (Group, error) {
	if strings.TrimSpace(name) == "" {
		return Group{}, fmt.Errorf("group name is required")
	}
	byID := make(map[string]contact.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}
	members := make([]contact.Contact, 0, len(memberIDs))
	for _, id := range memberIDs {
		c, ok := byID[id]
		if !ok {
			return Group{}, fmt.Errorf("unknown member id %q", id)
		}
		members = append(members, c)
	}
	if len(members) < 2 {
		return Group{}, fmt.Errorf("a mastermind group needs at least 2 members")
	}

	group := Group{
		ID:      "mastermind_" + uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Purpose: strings.TrimSpace(purpose),
		Members: members,
		Creator: creator,
		Created: s.now().UTC(),
		Status:  StatusForming,
	}

	data, err := json.Marshal(group)
	if err != nil {
		return Group{}, fmt.Errorf("encode group: %w", err)
	}
	existing := s.groups.ReadGroups()
	if !s.groups.WriteGroups(append(existing, data)) {
		return Group{}, fmt.Errorf("store group")
	}
	s.log.Info("created mastermind group", slog.String("group_id", group.ID), slog.Int("members", len(members)))
	return group, nil
}

// List returns all stored groups, skipping records that no longer parse.
func (s *Service) List() []Group {
	raw := s.groups.ReadGroups()
	out := make([]Group, 0, len(raw))
	for _, data := range raw {
		var g Group
		if err := json.Unmarshal(data, &g); err != nil {
			s.log.Warn("skipping undecodable group", slog.String("error", err.Error()))
			continue
		}
		out = append(out, g)
	}
	return out
}

// SuggestNames proposes group names based on the shared interests of the
// selected members.
func SuggestNames(members []contact.Contact) []string {
	interests := map[string]bool{}
	for _, c := range members {
		for _, interest := range c.Interests {
			interests[interest] = true
		}
	}

	var suggestions []string
	if interests["Real Estate"] && interests["Investment"] {
		suggestions = append(suggestions, "Real Estate Investment Mastermind")
	}
	if interests["Technology"] && interests["Entrepreneurship"] {
		suggestions = append(suggestions, "Tech Entrepreneur Collective")
	}
	if interests["Coaching"] && interests["Business"] {
		suggestions = append(suggestions, "Business Coaching Alliance")
	}
	if len(members) >= 3 {
		suggestions = append(suggestions, "High-Performance Business Mastermind", "Wealth Building Circle")
	}
	return suggestions
}
