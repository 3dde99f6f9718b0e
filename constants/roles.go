package constants

// User roles. An officer is a staff account that can create assisted
// bookings, progress delivery status and review feedback.
const (
	RoleCustomer = "CUSTOMER"
	RoleOfficer  = "OFFICER"
)

// Unique-id prefixes used for the human-readable login identifiers.
const (
	UniqueIDPrefixCustomer = "CUST"
	UniqueIDPrefixOfficer  = "OFF"
)
