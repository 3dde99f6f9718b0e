package customer

import "time"

// Customer represents a registered user. Officers share the same table and
// are distinguished by the Role flag.
type Customer struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	CountryCode  string `gorm:"type:varchar(10)" json:"country_code"`
	MobileNumber string `gorm:"type:varchar(20);not null" json:"mobile_number"`
	Address      string `gorm:"type:text" json:"address"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`

	// UniqueID is the human-readable login identifier (CUST.../OFF...),
	// distinct from both the primary key and the email.
	UniqueID string `gorm:"type:varchar(32);not null;unique" json:"unique_id"`

	// GetUpdatesVia is the preferred communication channel for updates.
	GetUpdatesVia string `gorm:"type:varchar(20)" json:"get_updates_via"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
