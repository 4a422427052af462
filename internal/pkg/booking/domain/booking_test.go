package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTargetStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"accepted", StatusAccepted, true},
		{"rejected", StatusRejected, true},
		{"completed", StatusCompleted, true},
		{"pending", "", false},
		{"ACCEPTED", "", false},
		{"", "", false},
		{"cancelled", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseTargetStatus(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}

func TestCanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted}
	legal := map[Status]map[Status]bool{
		StatusPending:  {StatusAccepted: true, StatusRejected: true},
		StatusAccepted: {StatusCompleted: true},
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestIsParty(t *testing.T) {
	b := &Booking{SenderID: 1, ReceiverID: 2}
	assert.True(t, b.IsParty(1))
	assert.True(t, b.IsParty(2))
	assert.False(t, b.IsParty(3))

	var nilBooking *Booking
	assert.False(t, nilBooking.IsParty(1))
}
