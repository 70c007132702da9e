package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_AcceptsCanonicalValues(t *testing.T) {
	for _, want := range GetAllBookingStatuses() {
		got, err := ParseStatus(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseStatus_RejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "CONFIRMED", "pending", "DONE", "Incomplete"} {
		_, err := ParseStatus(raw)
		assert.Error(t, err, "value %q must be rejected", raw)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusIncomplete.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.True(t, BookingStatusComplete.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}
