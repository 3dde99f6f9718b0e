package payment

import (
	"time"

	"courier-booking/models/booking"

	"github.com/shopspring/decimal"
)

// Payment records a simulated card payment. At most one payment exists per
// booking (unique index on BookingID) and rows are immutable once written.
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint            `gorm:"not null;uniqueIndex" json:"booking_id"`
	Booking   booking.Booking `gorm:"foreignKey:BookingID" json:"booking"`

	PaymentID     string `gorm:"type:varchar(32);not null;unique" json:"payment_id"`
	TransactionID string `gorm:"type:varchar(64);not null" json:"transaction_id"`
	InvoiceNumber string `gorm:"type:varchar(32);not null" json:"invoice_number"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`

	// CardLastFour is the only card detail persisted.
	CardLastFour   string `gorm:"type:varchar(4);not null" json:"card_last_four"`
	CardholderName string `gorm:"type:varchar(255)" json:"cardholder_name"`

	PaymentTime time.Time `gorm:"not null" json:"payment_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
