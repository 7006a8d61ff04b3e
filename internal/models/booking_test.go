package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBooking_IsParty(t *testing.T) {
	ownerID := uuid.New()
	providerID := uuid.New()
	booking := Booking{OwnerID: ownerID, ProviderID: providerID}

	assert.True(t, booking.IsParty(ownerID))
	assert.True(t, booking.IsParty(providerID))
	assert.False(t, booking.IsParty(uuid.New()))
}

func TestValidStatusUpdate(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		expected bool
	}{
		{StatusConfirmed, true},
		{StatusCancelled, true},
		{StatusCompleted, true},
		{StatusPending, false},
		{"SHIPPED", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidStatusUpdate(tt.status))
		})
	}
}
