package textutil

import "testing"

func TestSlugifyBasic(t *testing.T) {
	cases := map[string]string{
		"Premier Barn Door":          "premier-barn-door",
		"Custom  Closet   Door":      "custom-closet-door",
		"Heavy-Duty Track_System":    "heavy-duty-track-system",
		"Designer Door Handle (4in)": "designer-door-handle-4in",
		"  Modern Sliding Door  ":    "modern-sliding-door",
		"Décor Panel Élégant":        "decor-panel-elegant",
		"100% Solid Wood!":           "100-solid-wood",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Premier Barn Door",
		"Ergonomic Pull Handle",
		"Côté Armoire Été",
		"a_b_c---d",
	}
	for _, input := range inputs {
		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSlugifyNoEdgeSeparators(t *testing.T) {
	inputs := []string{
		"---Premier Door---",
		"  _underscored_  ",
		"trailing punctuation!!!",
	}
	for _, input := range inputs {
		got := Slugify(input)
		if got == "" {
			t.Fatalf("Slugify(%q) produced empty slug", input)
		}
		if got[0] == '-' || got[len(got)-1] == '-' {
			t.Errorf("Slugify(%q) = %q has leading/trailing separator", input, got)
		}
	}
}

func TestSlugifyUnusableInput(t *testing.T) {
	if got := Slugify("!!!"); got != "" {
		t.Errorf("expected empty slug for punctuation-only input, got %q", got)
	}
	if got := Slugify(""); got != "" {
		t.Errorf("expected empty slug for empty input, got %q", got)
	}
}
