package identity

import (
	"fmt"
	"strings"
)

// EmailAddress mirrors the identity provider's email entry shape.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
	Primary      bool   `json:"primary,omitempty"`
}

// User is the subset of the hosted identity provider's user object the
// application consumes. It is the only identity shape the rest of the
// code depends on.
type User struct {
	ID             string         `json:"id"`
	FullName       string         `json:"full_name,omitempty"`
	FirstName      string         `json:"first_name,omitempty"`
	EmailAddresses []EmailAddress `json:"email_addresses,omitempty"`
}

// PrimaryEmail returns the user's primary email address, falling back to
// the first listed address when none is marked primary.
func (u User) PrimaryEmail() string {
	for _, addr := range u.EmailAddresses {
		if addr.Primary && strings.TrimSpace(addr.EmailAddress) != "" {
			return strings.TrimSpace(addr.EmailAddress)
		}
	}
	for _, addr := range u.EmailAddresses {
		if strings.TrimSpace(addr.EmailAddress) != "" {
			return strings.TrimSpace(addr.EmailAddress)
		}
	}
	return ""
}

// DisplayName picks the best available human-readable name.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(u.FirstName)
}

func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}
