package feedback

import "courier-booking/types"

// AddRequest submits a post-delivery rating for a booking the requesting
// customer owns.
type AddRequest struct {
	BookingID   string `json:"booking_id" validate:"required"`
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	Description string `json:"description" validate:"required"`
}

func (r AddRequest) Validate() string {
	return types.ValidationMessage(r)
}
