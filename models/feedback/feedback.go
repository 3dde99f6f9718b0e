package feedback

import (
	"time"

	"courier-booking/models/booking"
	"courier-booking/models/customer"
)

// Feedback holds a customer's post-delivery rating for a booking. One row
// per booking, written once by the owning customer.
type Feedback struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint            `gorm:"not null;uniqueIndex" json:"booking_id"`
	Booking   booking.Booking `gorm:"foreignKey:BookingID" json:"booking"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	Rating              int    `gorm:"not null" json:"rating"`
	FeedbackDescription string `gorm:"type:text" json:"feedback_description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
