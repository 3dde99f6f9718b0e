package booking

import "fmt"

// BookingStatus is the lifecycle stage of a parcel booking.
type BookingStatus string

const (
	// StatusNew is a customer self-service booking awaiting payment.
	StatusNew BookingStatus = "NEW"
	// StatusBooked is a paid booking (or an officer-assisted one, where
	// payment is taken at creation).
	StatusBooked BookingStatus = "BOOKED"
	// StatusInTransit means the parcel has left with a courier.
	StatusInTransit BookingStatus = "IN_TRANSIT"
	// StatusDelivered and StatusCancelled are terminal.
	StatusDelivered BookingStatus = "DELIVERED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// DeliveryType selects the delivery speed tier.
type DeliveryType string

const (
	DeliveryStandard DeliveryType = "STANDARD"
	DeliveryExpress  DeliveryType = "EXPRESS"
	DeliverySameDay  DeliveryType = "SAME_DAY"
)

// PackingPreference selects the packaging tier.
type PackingPreference string

const (
	PackingBasic   PackingPreference = "BASIC"
	PackingPremium PackingPreference = "PREMIUM"
)

// transitions is the complete state machine. Payment moves NEW to BOOKED,
// officer updates move BOOKED through IN_TRANSIT to DELIVERED, cancellation
// is permitted from BOOKED only. Terminal states have no outgoing edges.
var transitions = map[BookingStatus][]BookingStatus{
	StatusNew:       {StatusBooked},
	StatusBooked:    {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered},
}

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case StatusNew, StatusBooked, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (bs BookingStatus) IsTerminal() bool {
	return bs == StatusDelivered || bs == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from bs in one step.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[bs] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates the move from bs to next and returns a descriptive
// error when it is not allowed. The caller persists nothing on error.
func (bs BookingStatus) Transition(next BookingStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("unknown parcel status %q", next)
	}
	if bs.IsTerminal() {
		return fmt.Errorf("booking is %s; no further status changes are allowed", bs)
	}
	if !bs.CanTransitionTo(next) {
		return fmt.Errorf("cannot change parcel status from %s to %s", bs, next)
	}
	return nil
}

// AllBookingStatuses returns every valid status, in lifecycle order.
func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{StatusNew, StatusBooked, StatusInTransit, StatusDelivered, StatusCancelled}
}
