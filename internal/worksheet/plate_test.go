package worksheet

import "testing"

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase with hyphen", "abc-123", "ABC123"},
		{"spaces", "ABC 123", "ABC123"},
		{"mixed separators", " a b-c 1-2 3 ", "ABC123"},
		{"already normalized", "ABC123", "ABC123"},
		{"empty", "", ""},
		{"only separators", " - - ", ""},
		{"tabs", "ab\tc123", "ABC123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePlate(tt.input); got != tt.want {
				t.Errorf("NormalizePlate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePlateIdempotent(t *testing.T) {
	inputs := []string{"abc-123", "ABC 123", "a-b-c", "", "Xy Z-9"}
	for _, in := range inputs {
		once := NormalizePlate(in)
		twice := NormalizePlate(once)
		if once != twice {
			t.Errorf("NormalizePlate not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizePlateEquivalenceClasses(t *testing.T) {
	// Case, whitespace, and hyphen variants of the same plate must collide.
	variants := []string{"abc-123", "ABC 123", "abc123", "A B C 1 2 3", "aBc-1 23"}
	for _, v := range variants {
		if got := NormalizePlate(v); got != "ABC123" {
			t.Errorf("NormalizePlate(%q) = %q, want ABC123", v, got)
		}
	}
}
