package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatal("expected distinct IDs")
	}

	parsed, err := googleuuid.Parse(a)
	if err != nil {
		t.Fatalf("New() returned unparseable %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	// Version 7 IDs sort by creation time.
	if a > b {
		t.Errorf("expected %s to sort before %s", a, b)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F3A8-7C1E-7B2A-9D4E-1A2B3C4D5E6F")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != "0190f3a8-7c1e-7b2a-9d4e-1a2b3c4d5e6f" {
		t.Errorf("expected canonical lower case, got %q", got)
	}

	if _, err := Parse("42"); err == nil {
		t.Error("expected error for malformed id")
	}
	if IsValid("not-a-uuid") || !IsValid(got) {
		t.Error("IsValid disagrees with Parse")
	}
}
