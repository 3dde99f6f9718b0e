package invoice

import (
	"testing"
	"time"

	paymentTypes "courier-booking/types/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoiceData() paymentTypes.InvoiceData {
	pickup := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return paymentTypes.InvoiceData{
		BookingID:          "BK1754422694940",
		PaymentID:          "PAY1754422700000",
		TransactionID:      "TXN-abc123",
		InvoiceNumber:      "INV-1754422694940",
		ReceiverName:       "Jordan Smith",
		ReceiverAddress:    "12 Harbour Lane, Dockside",
		ReceiverPin:        "560001",
		ReceiverMobile:     "9876543210",
		ParcelWeightInGram: 2000,
		ParcelContents:     "Books",
		DeliveryType:       "STANDARD",
		PackingPreference:  "BASIC",
		PickupTime:         &pickup,
		Amount:             decimal.NewFromInt(137),
		PaymentTime:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	pdfBytes, err := Render(testInvoiceData())
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRender_HandlesMissingTimes(t *testing.T) {
	data := testInvoiceData()
	data.PickupTime = nil
	data.DropoffTime = nil

	pdfBytes, err := Render(data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
