package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestExceedsLength(t *testing.T) {
	if ExceedsLength("Müller", 6) {
		t.Errorf("ExceedsLength counts bytes instead of runes")
	}
	if !ExceedsLength("abcdefg", 6) {
		t.Errorf("ExceedsLength(%q, 6) = false, want true", "abcdefg")
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2024-02-29"}
	invalid := []string{"2023-02-29", "15.01.2024", "2024-1-5", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+01:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"max", "erika.musterfrau", "admin_2", "a-b"}
	invalid := []string{"ab", "Max", "max mustermann", "", "ümlaut"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "kind", Message: "kind is invalid"},
	}

	if got := errs.Error(); got != "start_date: start_date is required; kind: kind is invalid" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if len(m) != 2 || m["kind"] != "kind is invalid" {
		t.Errorf("ToMap() = %v", m)
	}
}
