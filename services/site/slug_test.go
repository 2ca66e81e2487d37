package site

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Ada Lovelace", "ada-lovelace"},
		{"punctuation collapsed", "Dr. Grace Hopper, PhD", "dr-grace-hopper-phd"},
		{"digits kept", "Math 101 Tutoring", "math-101-tutoring"},
		{"leading and trailing junk", "  --Ada--  ", "ada"},
		{"multiple separators", "Ada___von   Lovelace", "ada-von-lovelace"},
		{"non-latin only", "数学の先生", "tutor"},
		{"empty", "", "tutor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := slugify(tc.in); got != tc.want {
				t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := "a very long professional headline that keeps going well past any sensible url length"
	got := slugify(long)
	if len(got) > maxSlugLength {
		t.Fatalf("slug %q exceeds %d characters", got, maxSlugLength)
	}
	if got[len(got)-1] == '-' {
		t.Errorf("truncated slug %q ends with a hyphen", got)
	}
}
