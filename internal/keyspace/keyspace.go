// Package keyspace enumerates the storage keys a record may live at.
//
// Earlier deployments wrote records under several key formats; reads must
// probe all of them, newest format first. The resolver is the single
// source of truth for that ordering so the scan logic is not repeated at
// call sites.
package keyspace

import "strings"

// Prefix namespaces every key the current deployment writes.
const Prefix = "friendsync"

const (
	backupPrefix    = Prefix + "_backup_"
	permanentPrefix = Prefix + "_profile_permanent_"
	emergencyPrefix = Prefix + "_emergency_contacts_"
)

// RecordType identifies the logical entity class being resolved.
type RecordType string

const (
	RecordProfile  RecordType = "profile"
	RecordContacts RecordType = "contacts"
	RecordCalendar RecordType = "calendar"
)

// canonicalName is the segment used in the current key format;
// legacyName is the segment older deployments used.
func (r RecordType) canonicalName() string {
	if r == RecordProfile {
		return "user_profile"
	}
	return string(r)
}

func (r RecordType) legacyName() string {
	return string(r)
}

// CanonicalKey is the single key a record should live at after migration.
func CanonicalKey(record RecordType, userID string) string {
	return Prefix + "_" + record.canonicalName() + "_" + strings.TrimSpace(userID)
}

// BackupKey is the email-derived redundant backup key, or "" when email
// is empty.
func BackupKey(record RecordType, email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return backupPrefix + record.legacyName() + "_" + email
}

// PermanentKey is the extra email-derived profile backup written by every
// profile save; it survives user-id churn across deployments. Only the
// profile record type has one.
func PermanentKey(record RecordType, email string) string {
	email = strings.TrimSpace(email)
	if record != RecordProfile || email == "" {
		return ""
	}
	return permanentPrefix + email
}

// EmergencyKeyPrefix is the prefix of timestamped contact snapshots
// written on every contacts save.
func EmergencyKeyPrefix() string {
	return emergencyPrefix
}

// Resolve returns the ordered candidate keys to probe for a record:
// canonical key first, then known legacy variants, then email-derived
// backups when email is non-blank. Deterministic and side-effect free.
// Never empty when userID is non-empty.
func Resolve(record RecordType, userID, email string) []string {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)

	keys := []string{
		CanonicalKey(record, userID),
		record.legacyName() + "_" + userID,
		"user_" + record.legacyName() + "_" + userID,
	}
	if email != "" {
		keys = append(keys, BackupKey(record, email))
		if permanent := PermanentKey(record, email); permanent != "" {
			keys = append(keys, permanent)
		}
	}
	return keys
}

// IsBackupKey reports whether a key belongs to the backup naming class.
// Backup keys are redundant by design and are never deleted during
// migrate-on-read.
func IsBackupKey(key string) bool {
	return strings.HasPrefix(key, backupPrefix) ||
		strings.HasPrefix(key, permanentPrefix) ||
		strings.HasPrefix(key, emergencyPrefix)
}
