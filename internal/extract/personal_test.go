package extract

import "testing"

func TestPersonal(t *testing.T) {
	text := "\n  John Smith\njohn.smith@example.com\n555-123-4567\nSeasoned backend developer."

	info := Personal(text)

	if info.Name != "John Smith" {
		t.Fatalf("expected first non-empty line as name, got %q", info.Name)
	}
	if info.Email != "john.smith@example.com" {
		t.Fatalf("unexpected email: %q", info.Email)
	}
	if info.Phone != "555-123-4567" {
		t.Fatalf("unexpected phone: %q", info.Phone)
	}
	if info.Location != "" || info.Summary != "" {
		t.Fatalf("location and summary are not produced by the deterministic path")
	}
}

func TestPersonalEmptyFields(t *testing.T) {
	info := Personal("Plain paragraph without contact details")

	if info.Name != "Plain paragraph without contact details" {
		t.Fatalf("unexpected name: %q", info.Name)
	}
	if info.Email != "" || info.Phone != "" {
		t.Fatalf("expected empty email and phone, got %q / %q", info.Email, info.Phone)
	}
}
