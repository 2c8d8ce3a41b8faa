package service

import "testing"

func TestParseTitle(t *testing.T) {
	cases := []struct {
		title string
		name  string
		role  string
	}{
		{"Jane Doe - VP Marketing at Acme | LinkedIn", "Jane Doe", "VP Marketing at Acme"},
		{"Jane Doe | Marketing Lead", "Jane Doe", "Marketing Lead"},
		{"Acme Corp", "Acme Corp", ""},
		{"Acme Corp | LinkedIn", "Acme Corp", ""},
		{"Acme Corp · LinkedIn", "Acme Corp", ""},
		{"Acme Corp · linkedin", "Acme Corp", ""},
		// dash wins when both separators occur
		{"Jane Doe - Founder | Acme", "Jane Doe", "Founder | Acme"},
	}

	for _, tc := range cases {
		got := ParseTitle(tc.title)
		if got.Name != tc.name || got.Role != tc.role {
			t.Fatalf("ParseTitle(%q) = %+v, want name=%q role=%q", tc.title, got, tc.name, tc.role)
		}
	}
}

func TestParseTitle_SuffixEquivalence(t *testing.T) {
	base := "Jane Doe - Head of Growth at Acme"
	for _, suffix := range []string{" | LinkedIn", " · LinkedIn", " | LINKEDIN", " · linkedIn"} {
		with := ParseTitle(base + suffix)
		without := ParseTitle(base)
		if with != without {
			t.Fatalf("suffix %q changed the result: %+v vs %+v", suffix, with, without)
		}
	}
}

func TestParseTitle_EmptyRole(t *testing.T) {
	got := ParseTitle("")
	if got.Name != "" || got.Role != "" {
		t.Fatalf("expected empty name and role, got %+v", got)
	}
}
