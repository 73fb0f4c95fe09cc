package transfer

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestImportCSV(t *testing.T) {
	t.Parallel()

	csvData := "Name,Email,Phone\nCara,cara@x.io,555\n"
	contacts, err := ImportCSV(strings.NewReader(csvData), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts = %+v", contacts)
	}
	c := contacts[0]
	if c.Name != "Cara" || c.Email != "cara@x.io" || c.Phone != "555" {
		t.Errorf("contact = %+v", c)
	}
	if c.ID == "" {
		t.Error("imported contact has no id")
	}
	if c.Category != contact.CategoryRegularFriends {
		t.Errorf("category = %q, want default", c.Category)
	}
}

func TestImportCSVTelHeaderAndCase(t *testing.T) {
	t.Parallel()

	csvData := "NAME,tel\nBo,123\n"
	contacts, err := ImportCSV(strings.NewReader(csvData), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Bo" || contacts[0].Phone != "123" {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestImportCSVSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	csvData := "name,email\nAnn,a@b.com\n,\n , \n"
	contacts, err := ImportCSV(strings.NewReader(csvData), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestImportCSVNoRecognizedColumns(t *testing.T) {
	t.Parallel()

	if _, err := ImportCSV(strings.NewReader("foo,bar\n1,2\n"), testNow); err == nil {
		t.Fatal("expected error for unrecognized header")
	}
}

func TestImportCSVEmptyInput(t *testing.T) {
	t.Parallel()

	contacts, err := ImportCSV(strings.NewReader(""), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 0 {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	original := []contact.Contact{
		contact.Normalize(contact.Contact{Name: "Ann", Email: "a@b.com", Category: contact.CategoryInnerCircle}, testNow),
		contact.Normalize(contact.Contact{Name: "Bo", LoveLanguage: "Quality Time"}, testNow),
	}
	p := &profile.Profile{ClerkUserID: "u1", Name: "Morten"}

	env := Export(original, p, testNow)
	if env.Version != EnvelopeVersion {
		t.Errorf("version = %q", env.Version)
	}
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}

	restored, err := ImportJSON(data, testNow.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 2 {
		t.Fatalf("restored = %+v", restored)
	}
	if restored[0].ID != original[0].ID || restored[0].Name != "Ann" || restored[0].Category != contact.CategoryInnerCircle {
		t.Errorf("restored[0] = %+v", restored[0])
	}
	if restored[1].LoveLanguage != "Quality Time" {
		t.Errorf("restored[1] = %+v", restored[1])
	}
}

func TestImportJSONBareArray(t *testing.T) {
	t.Parallel()

	contacts, err := ImportJSON([]byte(`[{"name":"Ann"},{"name":"Bo"}]`), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 2 {
		t.Fatalf("contacts = %+v", contacts)
	}
	for _, c := range contacts {
		if c.ID == "" || c.Tier == "" {
			t.Errorf("contact not normalized: %+v", c)
		}
	}
}

func TestImportJSONInvalid(t *testing.T) {
	t.Parallel()

	if _, err := ImportJSON([]byte(`{"contacts": "nope"}`), testNow); err == nil {
		t.Fatal("expected error")
	}
}

func TestExportNilContacts(t *testing.T) {
	t.Parallel()

	env := Export(nil, nil, testNow)
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"contacts":[]`) {
		t.Errorf("nil contacts should encode as empty array: %s", data)
	}
}
