package contact

// Desires captures the two asymmetric wish-lists for a relationship plus
// shared goals. Stored 1:1 by contact id, independent of the Contact
// record's lifecycle.
type Desires struct {
	WhatIWant         WishList `json:"whatIWant"`
	WhatICanGive      Offers   `json:"whatICanGive"`
	RelationshipGoals GoalSet  `json:"relationshipGoals"`
}

// WishList is what the user wants to receive from this person.
type WishList struct {
	BusinessSupport     []string `json:"businessSupport,omitempty"`
	PersonalSupport     []string `json:"personalSupport,omitempty"`
	SpecificRequests    string   `json:"specificRequests,omitempty"`
	EnergyNeeds         string   `json:"energyNeeds,omitempty"`
	FrequencyPreference string   `json:"frequencyPreference,omitempty"`
}

// Offers is what the user can give to this person.
type Offers struct {
	MyStrengths         []string `json:"myStrengths,omitempty"`
	ResourcesICanShare  []string `json:"resourcesICanShare,omitempty"`
	ConnectionsICanMake []string `json:"connectionsICanMake,omitempty"`
	SpecificOffers      string   `json:"specificOffers,omitempty"`
	GivingCapacity      string   `json:"givingCapacity,omitempty"`
}

// GoalSet holds mutual goals for the relationship.
type GoalSet struct {
	ShortTerm           []string `json:"shortTerm,omitempty"`
	LongTerm            []string `json:"longTerm,omitempty"`
	MutualProjects      string   `json:"mutualProjects,omitempty"`
	MastermindPotential bool     `json:"mastermindPotential,omitempty"`
}

// IsZero reports whether no desire has been recorded yet.
func (d Desires) IsZero() bool {
	return len(d.WhatIWant.BusinessSupport) == 0 &&
		len(d.WhatIWant.PersonalSupport) == 0 &&
		d.WhatIWant.SpecificRequests == "" &&
		len(d.WhatICanGive.MyStrengths) == 0 &&
		len(d.WhatICanGive.ResourcesICanShare) == 0 &&
		d.WhatICanGive.SpecificOffers == "" &&
		len(d.RelationshipGoals.ShortTerm) == 0 &&
		len(d.RelationshipGoals.LongTerm) == 0 &&
		!d.RelationshipGoals.MastermindPotential
}
