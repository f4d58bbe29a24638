package models

import "testing"

func TestIsValidMood(t *testing.T) {
	tests := []struct {
		mood string
		want bool
	}{
		{"Happy", true},
		{"Grateful", true},
		{"Peaceful", true},
		{"Excited", true},
		{"Thoughtful", true},
		{"Melancholy", true},
		{"Anxious", true},
		{"Hopeful", true},
		{"Sad", false},
		{"happy", false}, // case-sensitive
		{"", false},
		{"Peaceful ", false},
	}

	for _, tt := range tests {
		if got := IsValidMood(tt.mood); got != tt.want {
			t.Errorf("IsValidMood(%q) = %v, want %v", tt.mood, got, tt.want)
		}
	}
}

func TestValidMoodsCount(t *testing.T) {
	if len(ValidMoods) != 8 {
		t.Fatalf("expected 8 valid moods, got %d", len(ValidMoods))
	}
}
