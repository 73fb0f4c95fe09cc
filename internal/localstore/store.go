// Package localstore persists records in a local key-value space and
// transparently migrates data written under older key formats to the
// canonical one.
package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/keyspace"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

// Store reads and writes records through a KV. Reads walk the resolver's
// candidate keys and heal legacy placements in place; writes fan out to
// the canonical key plus redundant backups. Write methods report success
// as a bool so callers can surface partial-persistence outcomes instead
// of failing the request.
type Store struct {
	kv  KV
	log *slog.Logger
	now func() time.Time
}

func New(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		kv:  kv,
		log: log.With(slog.String("component", "localstore")),
		now: time.Now,
	}
}

// ReadProfile returns the first parseable profile along the resolver's
// candidate keys, or nil. A value that fails to parse is skipped with a
// warning and the scan continues, so a corrupt record at one key cannot
// hide a valid one further down the list. Only the key that parsed is
// migrated.
func (s *Store) ReadProfile(userID, email string) *profile.Profile {
	for _, key := range keyspace.Resolve(keyspace.RecordProfile, userID, email) {
		raw, found := s.kv.Get(key)
		if !found {
			continue
		}
		var p profile.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.log.Warn("skipping unparseable profile", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		s.migrate(keyspace.RecordProfile, userID, key)
		return &p
	}
	return nil
}

// WriteProfile stores the profile under the canonical key and, when the
// profile carries an email, under both email-derived backup keys.
func (s *Store) WriteProfile(userID string, p profile.Profile) bool {
	data, err := json.Marshal(p)
	if err != nil {
		s.log.Warn("marshal profile", slog.String("error", err.Error()))
		return false
	}
	ok := s.set(keyspace.CanonicalKey(keyspace.RecordProfile, userID), string(data))
	if backup := keyspace.BackupKey(keyspace.RecordProfile, p.Email); backup != "" {
		s.set(backup, string(data))
	}
	if permanent := keyspace.PermanentKey(keyspace.RecordProfile, p.Email); permanent != "" {
		s.set(permanent, string(data))
	}
	return ok
}

// ReadContacts returns the stored contact list. A key holding an empty
// list is treated as a miss so the scan can fall through to a backup
// that still has data. Returns an empty slice when nothing is found.
func (s *Store) ReadContacts(userID, email string) []contact.Contact {
	for _, key := range keyspace.Resolve(keyspace.RecordContacts, userID, email) {
		if list, ok := s.contactsAt(key); ok {
			s.migrate(keyspace.RecordContacts, userID, key)
			return list
		}
	}
	// Last resort: newest emergency snapshot.
	keys := s.kv.Keys(keyspace.EmergencyKeyPrefix())
	for i := len(keys) - 1; i >= 0; i-- {
		if list, ok := s.contactsAt(keys[i]); ok {
			s.log.Info("recovered contacts from emergency snapshot", slog.String("key", keys[i]))
			return list
		}
	}
	return []contact.Contact{}
}

func (s *Store) contactsAt(key string) ([]contact.Contact, bool) {
	raw, found := s.kv.Get(key)
	if !found {
		return nil, false
	}
	var list []contact.Contact
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.log.Warn("discarding unparseable contacts", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	if len(list) == 0 {
		return nil, false
	}
	return list, true
}

// WriteContacts stores the list under the canonical key, the email
// backup when available, and a fresh timestamped emergency snapshot.
func (s *Store) WriteContacts(userID, email string, contacts []contact.Contact) bool {
	data, err := json.Marshal(contacts)
	if err != nil {
		s.log.Warn("marshal contacts", slog.String("error", err.Error()))
		return false
	}
	ok := s.set(keyspace.CanonicalKey(keyspace.RecordContacts, userID), string(data))
	if backup := keyspace.BackupKey(keyspace.RecordContacts, email); backup != "" {
		s.set(backup, string(data))
	}
	s.set(fmt.Sprintf("%s%d", keyspace.EmergencyKeyPrefix(), s.now().UnixMilli()), string(data))
	return ok
}

// ReadEvents returns the stored calendar events, or an empty slice.
// Unparseable values are skipped the same way profile reads skip them.
func (s *Store) ReadEvents(userID string) []calendar.Event {
	for _, key := range keyspace.Resolve(keyspace.RecordCalendar, userID, "") {
		raw, found := s.kv.Get(key)
		if !found {
			continue
		}
		var events []calendar.Event
		if err := json.Unmarshal([]byte(raw), &events); err != nil {
			s.log.Warn("skipping unparseable events", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		s.migrate(keyspace.RecordCalendar, userID, key)
		return events
	}
	return []calendar.Event{}
}

func (s *Store) WriteEvents(userID string, events []calendar.Event) bool {
	data, err := json.Marshal(events)
	if err != nil {
		s.log.Warn("marshal events", slog.String("error", err.Error()))
		return false
	}
	return s.set(keyspace.CanonicalKey(keyspace.RecordCalendar, userID), string(data))
}

// ReadDesires returns the deeper-relationship record for a contact, or
// nil when none is stored.
func (s *Store) ReadDesires(contactID string) *contact.Desires {
	raw, found := s.kv.Get(desiresKey(contactID))
	if !found {
		return nil
	}
	var d contact.Desires
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.log.Warn("discarding unparseable desires", slog.String("contact_id", contactID), slog.String("error", err.Error()))
		return nil
	}
	return &d
}

func (s *Store) WriteDesires(contactID string, d contact.Desires) bool {
	data, err := json.Marshal(d)
	if err != nil {
		s.log.Warn("marshal desires", slog.String("error", err.Error()))
		return false
	}
	return s.set(desiresKey(contactID), string(data))
}

func desiresKey(contactID string) string {
	return "relationship_desires_" + contactID
}

const groupsKey = "mastermind_groups"

// ReadGroups returns all stored mastermind groups as raw JSON objects.
func (s *Store) ReadGroups() []json.RawMessage {
	raw, found := s.kv.Get(groupsKey)
	if !found {
		return nil
	}
	var groups []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		s.log.Warn("discarding unparseable groups", slog.String("error", err.Error()))
		return nil
	}
	return groups
}

func (s *Store) WriteGroups(groups []json.RawMessage) bool {
	data, err := json.Marshal(groups)
	if err != nil {
		s.log.Warn("marshal groups", slog.String("error", err.Error()))
		return false
	}
	return s.set(groupsKey, string(data))
}

// migrate copies a value found at a non-canonical key to the canonical
// one, then removes the legacy key. Backup-class keys stay in place.
// Running it again after a canonical hit is a no-op, so repeated reads
// converge. Callers only invoke it for keys whose value already parsed.
func (s *Store) migrate(record keyspace.RecordType, userID, foundAt string) {
	canonical := keyspace.CanonicalKey(record, userID)
	if foundAt == canonical {
		return
	}
	raw, found := s.kv.Get(foundAt)
	if !found {
		return
	}
	if !s.set(canonical, raw) {
		return
	}
	if !keyspace.IsBackupKey(foundAt) {
		s.kv.Delete(foundAt)
	}
	s.log.Info("migrated record to canonical key",
		slog.String("record", string(record)),
		slog.String("from", foundAt),
		slog.String("to", canonical))
}

func (s *Store) set(key, value string) bool {
	if err := s.kv.Set(key, value); err != nil {
		s.log.Warn("write failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}
