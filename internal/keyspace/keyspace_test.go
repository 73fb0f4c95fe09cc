package keyspace

import (
	"strings"
	"testing"
)

func TestResolveProfileOrder(t *testing.T) {
	t.Parallel()

	keys := Resolve(RecordProfile, "u1", "a@b.com")
	want := []string{
		"friendsync_user_profile_u1",
		"profile_u1",
		"user_profile_u1",
		"friendsync_backup_profile_a@b.com",
		"friendsync_profile_permanent_a@b.com",
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestResolveContactsOrder(t *testing.T) {
	t.Parallel()

	keys := Resolve(RecordContacts, "u2", "c@d.com")
	want := []string{
		"friendsync_contacts_u2",
		"contacts_u2",
		"user_contacts_u2",
		"friendsync_backup_contacts_c@d.com",
	}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestResolveBlankEmailOmitsBackups(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"", "   ", "\t"} {
		keys := Resolve(RecordProfile, "u1", email)
		for _, k := range keys {
			if IsBackupKey(k) {
				t.Errorf("email %q: backup key %q should be omitted", email, k)
			}
		}
		if len(keys) == 0 {
			t.Errorf("email %q: resolver returned no keys", email)
		}
	}
}

func TestResolveCanonicalFirstAndOnce(t *testing.T) {
	t.Parallel()

	for _, record := range []RecordType{RecordProfile, RecordContacts, RecordCalendar} {
		keys := Resolve(record, "user-9", "x@y.z")
		canonical := CanonicalKey(record, "user-9")
		if keys[0] != canonical {
			t.Errorf("%s: first key = %q, want canonical %q", record, keys[0], canonical)
		}
		seen := 0
		for _, k := range keys {
			if k == canonical {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("%s: canonical key appears %d times", record, seen)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()

	a := Resolve(RecordContacts, "u1", "a@b.com")
	b := Resolve(RecordContacts, "u1", "a@b.com")
	if strings.Join(a, "|") != strings.Join(b, "|") {
		t.Fatalf("resolver not deterministic: %v vs %v", a, b)
	}
}

func TestIsBackupKey(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"friendsync_backup_profile_a@b.com":     true,
		"friendsync_backup_contacts_a@b.com":    true,
		"friendsync_profile_permanent_a@b.com":  true,
		"friendsync_emergency_contacts_1700000": true,
		"friendsync_user_profile_u1":            false,
		"profile_u1":                            false,
		"contacts_u1":                           false,
	}
	for key, want := range cases {
		if got := IsBackupKey(key); got != want {
			t.Errorf("IsBackupKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestPermanentKeyOnlyForProfiles(t *testing.T) {
	t.Parallel()

	if k := PermanentKey(RecordContacts, "a@b.com"); k != "" {
		t.Errorf("contacts permanent key = %q, want empty", k)
	}
	if k := PermanentKey(RecordProfile, "a@b.com"); k != "friendsync_profile_permanent_a@b.com" {
		t.Errorf("profile permanent key = %q", k)
	}
}
