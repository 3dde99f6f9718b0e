package utils

import (
	"strings"
	"testing"
	"time"

	"courier-booking/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingID(t *testing.T) {
	id := GenerateBookingID()
	assert.True(t, strings.HasPrefix(id, "BK"))
	assert.Greater(t, len(id), 10)
}

func TestGenerateUniqueID(t *testing.T) {
	cust := GenerateUniqueID(constants.RoleCustomer)
	assert.True(t, strings.HasPrefix(cust, "CUST"))
	assert.Len(t, cust, len("CUST")+5+3)

	off := GenerateUniqueID(constants.RoleOfficer)
	assert.True(t, strings.HasPrefix(off, "OFF"))
	assert.Len(t, off, len("OFF")+5+3)
}

func TestGenerateTransactionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateTransactionID()
		assert.True(t, strings.HasPrefix(id, "TXN-"))
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-1754422694940", GenerateInvoiceNumber("BK1754422694940"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "1111", MaskCardNumber("4111111111111111"))
	assert.Equal(t, "1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "123", MaskCardNumber("123"))
}

func TestRedactBody(t *testing.T) {
	body := []byte(`{"unique_id":"CUST12345678","password":"hunter2","card_number":"4111111111111111"}`)
	redacted := redactBody(body)

	assert.NotContains(t, redacted, "hunter2")
	assert.NotContains(t, redacted, "4111111111111111")
	assert.Contains(t, redacted, "CUST12345678")
	assert.Contains(t, redacted, "[REDACTED]")
}

func TestRedactBody_NonJSONPassesThrough(t *testing.T) {
	assert.Equal(t, "not json", redactBody([]byte("not json")))
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := GenerateToken(secret, "alice@example.com", 42, constants.RoleCustomer, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", ClaimString(claims, "sub"))
	assert.Equal(t, constants.RoleCustomer, ClaimString(claims, "role"))

	userID, err := ClaimUserID(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseToken_WrongSecretFails(t *testing.T) {
	token, err := GenerateToken("secret-a", "alice@example.com", 1, constants.RoleCustomer, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("secret-b", token)
	assert.Error(t, err)
}
