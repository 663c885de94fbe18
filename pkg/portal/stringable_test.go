package portal

import "testing"

func TestStringable_ToLower(t *testing.T) {
	s := NewStringable(" FooBar ")

	if got := s.ToLower(); got != "foobar" {
		t.Fatalf("expected foobar got %s", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":                     "hello-world",
		"  Tech Essentials  ":             "tech-essentials",
		"Best 4K TVs -- 2024!":            "best-4k-tvs-2024",
		"Café Crème":                      "cafe-creme",
		"Smart_Home & iOS":                "smart-home-ios",
		"---":                             "",
		"How to Fix Wi-Fi on Windows 11?": "how-to-fix-wi-fi-on-windows-11",
	}

	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	first := Slugify("The Ultimate Router Buying Guide")

	if second := Slugify(first); second != first {
		t.Fatalf("expected %q to be stable, got %q", first, second)
	}
}
