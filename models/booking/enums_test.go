package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusNew, StatusBooked, true},
		{StatusNew, StatusInTransit, false},
		{StatusNew, StatusCancelled, false},
		{StatusBooked, StatusInTransit, true},
		{StatusBooked, StatusCancelled, true},
		{StatusBooked, StatusDelivered, false},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusCancelled, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusCancelled, StatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))

			err := tt.from.Transition(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBookingStatus_BookedReachesOnlyInTransitOrCancelled(t *testing.T) {
	var reachable []BookingStatus
	for _, next := range AllBookingStatuses() {
		if StatusBooked.CanTransitionTo(next) {
			reachable = append(reachable, next)
		}
	}
	assert.ElementsMatch(t, []BookingStatus{StatusInTransit, StatusCancelled}, reachable)
}

func TestBookingStatus_TerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []BookingStatus{StatusDelivered, StatusCancelled} {
		require.True(t, terminal.IsTerminal())
		for _, next := range AllBookingStatuses() {
			assert.False(t, terminal.CanTransitionTo(next),
				"%s should not reach %s", terminal, next)
			assert.Error(t, terminal.Transition(next))
		}
	}
}

func TestBookingStatus_TransitionErrorsAreDescriptive(t *testing.T) {
	err := StatusInTransit.Transition(StatusCancelled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IN_TRANSIT")
	assert.Contains(t, err.Error(), "CANCELLED")

	err = StatusDelivered.Transition(StatusInTransit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DELIVERED")

	err = StatusBooked.Transition(BookingStatus("LOST"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOST")
}

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range AllBookingStatuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, BookingStatus("SHIPPED").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatus_FullDeliveryPath(t *testing.T) {
	path := []BookingStatus{StatusNew, StatusBooked, StatusInTransit, StatusDelivered}
	for i := 0; i < len(path)-1; i++ {
		require.NoError(t, path[i].Transition(path[i+1]),
			"step %s -> %s should be allowed", path[i], path[i+1])
	}
}
