package distance

import "testing"

func TestHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint64
		expected int
	}{
		{"identical", 0, 0, 0},
		{"one bit", 1, 0, 1},
		{"two bits", 3, 0, 2},
		{"all bits", 0xFFFFFFFFFFFFFFFF, 0, 64},
		{"half bits", 0xAAAAAAAAAAAAAAAA, 0x5555555555555555, 64},
		{"similar", 0x8000000000000000, 0x8000000000000001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hamming(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Hamming(%x, %x) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if sym := Hamming(tt.b, tt.a); sym != got {
				t.Errorf("Hamming not symmetric: %d vs %d", got, sym)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "book", "book", 0},
		{"both empty", "", "", 0},
		{"empty left", "", "boo", 3},
		{"empty right", "boo", "", 3},
		{"insertion", "book", "books", 1},
		{"deletion", "book", "boo", 1},
		{"substitution", "book", "cook", 1},
		{"mixed", "cake", "cart", 2},
		{"prefix", "bo", "boon", 2},
		{"unrelated", "kitten", "sitting", 3},
		{"unicode runes", "über", "uber", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Levenshtein(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if sym := Levenshtein(tt.b, tt.a); sym != got {
				t.Errorf("Levenshtein not symmetric: %d vs %d", got, sym)
			}
		})
	}
}
