package centres

import (
	"math"
	"testing"
)

func TestParseRadius(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 50},
		{"25", 25},
		{"  25", 25},
		{"+5", 5},
		{"-5", -5},
		{"10mi", 10},
		{"7.9", 7},
		{"0", 0},
		{"abc", 50},
		{"-", 50},
		{".5", 50},
		{"99999999999999999999", math.MaxInt},
		{"-99999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseRadius(tt.input, 50); got != tt.expected {
				t.Errorf("ParseRadius(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
