package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Midjourney", "midjourney"},
		{"spaces", "Stable Diffusion XL", "stable-diffusion-xl"},
		{"punctuation collapsed", "GPT-4 (Turbo)!", "gpt-4-turbo"},
		{"accents folded", "Café Régle", "cafe-regle"},
		{"leading and trailing noise", "  --AI Tool--  ", "ai-tool"},
		{"numbers kept", "Tool 42", "tool-42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
