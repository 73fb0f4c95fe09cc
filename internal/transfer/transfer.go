// Package transfer imports contacts from CSV or JSON and exports the
// full data set as a versioned JSON envelope.
package transfer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

// EnvelopeVersion identifies the export format.
const EnvelopeVersion = "1.0"

// Envelope is the full-export document. Re-importing one restores the
// contact set.
type Envelope struct {
	Contacts    []contact.Contact `json:"contacts"`
	UserProfile *profile.Profile  `json:"userProfile,omitempty"`
	ExportDate  time.Time         `json:"exportDate"`
	Version     string            `json:"version"`
}

// Export wraps the current data set in a versioned envelope.
func Export(contacts []contact.Contact, p *profile.Profile, now time.Time) Envelope {
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	return Envelope{
		Contacts:    contacts,
		UserProfile: p,
		ExportDate:  now.UTC(),
		Version:     EnvelopeVersion,
	}
}

// ImportCSV parses contacts from CSV. The header row is matched case
// insensitively; name, email and phone (or tel) columns are recognized
// and everything else is ignored. Rows without any recognized value are
// skipped. Every imported contact is normalized.
func ImportCSV(r io.Reader, now time.Time) ([]contact.Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []contact.Contact{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	nameCol, emailCol, phoneCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameCol = i
		case "email":
			emailCol = i
		case "phone", "tel":
			phoneCol = i
		}
	}
	if nameCol < 0 && emailCol < 0 && phoneCol < 0 {
		return nil, fmt.Errorf("csv has no recognized columns (need name, email or phone)")
	}

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	var contacts []contact.Contact
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		c := contact.Contact{
			Name:  cell(row, nameCol),
			Email: cell(row, emailCol),
			Phone: cell(row, phoneCol),
		}
		if c.Name == "" && c.Email == "" && c.Phone == "" {
			continue
		}
		contacts = append(contacts, contact.Normalize(c, now))
	}
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	return contacts, nil
}

// ImportJSON accepts either a full export envelope or a bare contact
// array. Every imported contact is normalized.
func ImportJSON(data []byte, now time.Time) ([]contact.Contact, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Contacts != nil {
		return normalizeAll(env.Contacts, now), nil
	}
	var list []contact.Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode contacts json: %w", err)
	}
	return normalizeAll(list, now), nil
}

func normalizeAll(list []contact.Contact, now time.Time) []contact.Contact {
	out := make([]contact.Contact, 0, len(list))
	for _, c := range list {
		out = append(out, contact.Normalize(c, now))
	}
	return out
}
