package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderProfile_OffersService(t *testing.T) {
	profile := ProviderProfile{ServicesOffered: `["BOARDING", "WALKING"]`}

	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{name: "full token", token: "WALKING", expected: true},
		{name: "other full token", token: "BOARDING", expected: true},
		{name: "partial token matches", token: "ALK", expected: true},
		{name: "empty token matches everything", token: "", expected: true},
		{name: "lowercase does not match", token: "walking", expected: false},
		{name: "unknown token", token: "GROOMING", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, profile.OffersService(tt.token))
		})
	}
}
