package utils

import "testing"

func TestValidPhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+62 812 3456 7890", true},
		{"+62812345678", true},
		{"0812-3456-7890", true},
		{"628123456789012", true},
		{"123", false},                 // too short
		{"abc1234567890", false},       // non-numeric
		{"+62 812 3456 789x", false},   // trailing letter
		{"6281234567890123456", false}, // too long
		{"", false},
		{"+", false},
	}
	for _, tc := range cases {
		if got := ValidPhoneNumber(tc.phone); got != tc.want {
			t.Errorf("ValidPhoneNumber(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("+62 812-3456 7890"); got != "6281234567890" {
		t.Fatalf("DigitsOnly = %q, want 6281234567890", got)
	}
}
