package payment

import (
	"time"

	"courier-booking/types"

	"github.com/shopspring/decimal"
)

// ProcessRequest carries the simulated card details. Nothing here is sent
// to a real processor; only the masked card reference is persisted.
type ProcessRequest struct {
	BookingID      string `json:"booking_id" validate:"required"`
	CardNumber     string `json:"card_number" validate:"required,numeric,min=13,max=19"`
	CardholderName string `json:"cardholder_name" validate:"required,min=2"`
	ExpiryDate     string `json:"expiry_date" validate:"required,min=4,max=7"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

func (r ProcessRequest) Validate() string {
	return types.ValidationMessage(r)
}

// InvoiceData is the flattened invoice payload used for both the JSON
// endpoint and the PDF renderer.
type InvoiceData struct {
	BookingID     string `json:"booking_id"`
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
	InvoiceNumber string `json:"invoice_number"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverAddress string `json:"receiver_address"`
	ReceiverPin     string `json:"receiver_pin"`
	ReceiverMobile  string `json:"receiver_mobile"`

	ParcelWeightInGram int    `json:"parcel_weight_in_gram"`
	ParcelContents     string `json:"parcel_contents"`
	DeliveryType       string `json:"delivery_type"`
	PackingPreference  string `json:"packing_preference"`

	PickupTime  *time.Time `json:"pickup_time,omitempty"`
	DropoffTime *time.Time `json:"dropoff_time,omitempty"`

	Amount      decimal.Decimal `json:"amount"`
	PaymentTime time.Time       `json:"payment_time"`
}
