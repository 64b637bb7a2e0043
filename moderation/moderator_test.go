package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions
// (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"venmo", "paypal", "whatsapp"}
	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "Pay me on venmo instead",
			expected: "Pay me on ***** instead",
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "venmo venmo venmo",
			expected: "***** ***** *****",
		},
		{
			name: "Leet speak and internal punctuation",
			// v (index 9) . 3 . n . m . 0 (index 17) -> 9 characters
			input:    "Send via v.3.n.m.0 ok",
			expected: "Send via ********* ok",
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "V-E-N-M-O or P.A.Y.P.A.L",
			expected: "********* or ***********",
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I only take paypal!",
			expected: "I only take ******!",
		},
		{
			name:     "Nothing to censor",
			input:    "Is the bike still for sale",
			expected: "Is the bike still for sale",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, mod.Censor(tt.input), "test=%s,", tt.name)
		})
	}
}

func TestModerator_Masks_Contact_Details(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Phone number with separators",
			input:    "call me at 555-123-4567 tonight",
			expected: "call me at ************ tonight",
		},
		{
			name:     "International phone number",
			input:    "reach me on +33612345678",
			expected: "reach me on ************",
		},
		{
			name:     "E-mail address",
			input:    "write to john.doe@example.com please",
			expected: "write to ******************** please",
		},
		{
			name:     "Plain price is untouched",
			input:    "I can do 120, not less",
			expected: "I can do 120, not less",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, mod.Censor(tt.input), "test=%s,", tt.name)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "venmo"}
	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	// Then the sentence is still censored
	req.Equal("The ***** fee", mod.Censor("The venmo fee"))
}
