package utils

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"courier-booking/constants"
	"courier-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GenerateBookingID returns the externally visible booking identifier,
// e.g. BK1754422694940.
func GenerateBookingID() string {
	return fmt.Sprintf("BK%d", time.Now().UnixMilli())
}

// GenerateUniqueID builds the human-readable login identifier: role prefix,
// the last five digits of the current unix-millis and a random 3-digit
// suffix, e.g. CUST94940123.
func GenerateUniqueID(role string) string {
	prefix := constants.UniqueIDPrefixCustomer
	if role == constants.RoleOfficer {
		prefix = constants.UniqueIDPrefixOfficer
	}

	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("%s%s%03d", prefix, millis[len(millis)-5:], rand.Intn(1000))
}

// GeneratePaymentID returns a payment identifier, e.g. PAY1754422694940.
func GeneratePaymentID() string {
	return fmt.Sprintf("PAY%d", time.Now().UnixMilli())
}

// GenerateTransactionID returns a unique simulated processor reference.
func GenerateTransactionID() string {
	return "TXN-" + uuid.NewString()
}

// GenerateInvoiceNumber derives the invoice number from the booking id.
func GenerateInvoiceNumber(bookingID string) string {
	return "INV-" + strings.TrimPrefix(bookingID, "BK")
}

// MaskCardNumber keeps only the last four digits of a card number.
func MaskCardNumber(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// sensitiveFields are stripped from audit log bodies before persistence.
var sensitiveFields = []string{
	"password", "current_password", "new_password", "confirm_password",
	"card_number", "cvv", "expiry_date",
}

// SanitizedLogEntry captures the request for the async audit logger with
// credentials and card data redacted.
func SanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	reqHeaders := c.GetReqHeaders()
	delete(reqHeaders, fiber.HeaderAuthorization)
	headerJSON, _ := json.Marshal(reqHeaders)

	return types.LogEntry{
		Method:         c.Method(),
		URL:            c.OriginalURL(),
		RequestBody:    redactBody(c.Body()),
		RequestHeaders: string(headerJSON),
		StatusCode:     c.Response().StatusCode(),
		CreatedAt:      time.Now(),
	}
}

// redactBody replaces sensitive JSON fields with a placeholder. Bodies that
// are not JSON objects pass through untouched.
func redactBody(body []byte) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	for _, field := range sensitiveFields {
		if _, ok := parsed[field]; ok {
			parsed[field] = "[REDACTED]"
		}
	}

	redacted, err := json.Marshal(parsed)
	if err != nil {
		return ""
	}
	return string(redacted)
}
