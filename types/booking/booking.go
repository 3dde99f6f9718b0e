package booking

import (
	"time"

	"courier-booking/types"
)

// CreateRequest is the body for both the customer and the officer booking
// endpoints. The service cost is computed server-side and never read from
// the client.
type CreateRequest struct {
	ReceiverName    string `json:"receiver_name" validate:"required,min=2"`
	ReceiverAddress string `json:"receiver_address" validate:"required"`
	ReceiverPin     string `json:"receiver_pin" validate:"required,numeric,min=4,max=10"`
	ReceiverMobile  string `json:"receiver_mobile" validate:"required,min=7"`

	ParcelWeightInGram        int    `json:"parcel_weight_in_gram" validate:"required,gt=0"`
	ParcelContentsDescription string `json:"parcel_contents_description" validate:"required"`
	ParcelDeliveryType        string `json:"parcel_delivery_type" validate:"required,oneof=STANDARD EXPRESS SAME_DAY"`
	ParcelPackingPreference   string `json:"parcel_packing_preference" validate:"required,oneof=BASIC PREMIUM"`

	ParcelPickupTime  *time.Time `json:"parcel_pickup_time,omitempty"`
	ParcelDropoffTime *time.Time `json:"parcel_dropoff_time,omitempty"`
}

func (r CreateRequest) Validate() string {
	return types.ValidationMessage(r)
}

// UpdateStatusRequest moves a booking along the delivery path.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=IN_TRANSIT DELIVERED"`
}

func (r UpdateStatusRequest) Validate() string {
	return types.ValidationMessage(r)
}
