package booking

import (
	"time"

	"courier-booking/models/customer"

	"github.com/shopspring/decimal"
)

// Booking represents a single parcel-shipment request. Rows are never
// deleted; the lifecycle only mutates ParcelStatus.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// BookingID is the externally visible identifier, assigned once at
	// creation and immutable afterwards.
	BookingID string `gorm:"type:varchar(32);not null;unique" json:"booking_id"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	ReceiverName    string `gorm:"type:varchar(255);not null" json:"receiver_name"`
	ReceiverAddress string `gorm:"type:text;not null" json:"receiver_address"`
	ReceiverPin     string `gorm:"type:varchar(10);not null" json:"receiver_pin"`
	ReceiverMobile  string `gorm:"type:varchar(20);not null" json:"receiver_mobile"`

	ParcelWeightInGram        int               `gorm:"not null" json:"parcel_weight_in_gram"`
	ParcelContentsDescription string            `gorm:"type:text" json:"parcel_contents_description"`
	ParcelDeliveryType        DeliveryType      `gorm:"type:varchar(20);not null" json:"parcel_delivery_type"`
	ParcelPackingPreference   PackingPreference `gorm:"type:varchar(20);not null" json:"parcel_packing_preference"`

	// ParcelServiceCost is derived server-side by the cost calculator and
	// never accepted from the client.
	ParcelServiceCost decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"parcel_service_cost"`

	ParcelPickupTime  *time.Time `json:"parcel_pickup_time,omitempty"`
	ParcelDropoffTime *time.Time `json:"parcel_dropoff_time,omitempty"`
	ParcelPaymentTime *time.Time `json:"parcel_payment_time,omitempty"`

	ParcelStatus BookingStatus `gorm:"type:varchar(20);not null;index" json:"parcel_status"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
