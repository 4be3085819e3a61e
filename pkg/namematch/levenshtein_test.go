package namematch

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		first  string
		second string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"general", "genera1", 1},
	}

	for _, tt := range tests {
		if got := Distance(tt.first, tt.second); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.first, tt.second, got, tt.want)
		}
	}
}

func TestWithinThreshold(t *testing.T) {
	if !WithinThreshold("generall", "generally") {
		t.Error("one edit over nine characters should pass the threshold")
	}
	if WithinThreshold("cat", "dog") {
		t.Error("completely different strings should fail the threshold")
	}
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"general", "gaming", "music lounge", "afk"}

	t.Run("close misspelling wins", func(t *testing.T) {
		got, ok := BestMatch("generel", candidates)
		if !ok || got != "general" {
			t.Errorf("BestMatch(generel) = %q, %v; want general", got, ok)
		}
	})

	t.Run("prefix is a fallback", func(t *testing.T) {
		got, ok := BestMatch("mus", candidates)
		if !ok || got != "music lounge" {
			t.Errorf("BestMatch(mus) = %q, %v; want music lounge", got, ok)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got, ok := BestMatch("zzzzzz", candidates); ok {
			t.Errorf("BestMatch(zzzzzz) = %q, want no match", got)
		}
	})

	t.Run("closest of several candidates wins", func(t *testing.T) {
		got, ok := BestMatch("gamin", []string{"gaming", "gamine"})
		if !ok || got != "gaming" && got != "gamine" {
			t.Errorf("BestMatch(gamin) = %q, %v; want a close candidate", got, ok)
		}
	})
}
