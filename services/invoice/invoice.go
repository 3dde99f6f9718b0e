// Package invoice renders payment invoices as PDF documents.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	paymentTypes "courier-booking/types/payment"

	"github.com/go-pdf/fpdf"
)

const timeLayout = "02 Jan 2006 15:04"

// Render produces the invoice PDF for a paid booking.
func Render(data paymentTypes.InvoiceData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+data.InvoiceNumber, false)
	pdf.AddPage()

	addHeader(pdf, data)
	addSection(pdf, "Invoice Details", [][2]string{
		{"Booking ID", data.BookingID},
		{"Payment ID", data.PaymentID},
		{"Transaction ID", data.TransactionID},
		{"Invoice Number", data.InvoiceNumber},
	})
	addSection(pdf, "Receiver Information", [][2]string{
		{"Name", data.ReceiverName},
		{"Phone", data.ReceiverMobile},
		{"Address", data.ReceiverAddress},
		{"PIN Code", data.ReceiverPin},
	})
	addSection(pdf, "Parcel Information", [][2]string{
		{"Weight", fmt.Sprintf("%dg", data.ParcelWeightInGram)},
		{"Contents", data.ParcelContents},
		{"Delivery Type", data.DeliveryType},
		{"Packing Preference", data.PackingPreference},
	})
	addSection(pdf, "Timing", [][2]string{
		{"Pickup", formatTime(data.PickupTime)},
		{"Dropoff", formatTime(data.DropoffTime)},
		{"Payment", data.PaymentTime.Format(timeLayout)},
	})
	addTotal(pdf, data)
	addFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", data.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func addHeader(pdf *fpdf.Fpdf, data paymentTypes.InvoiceData) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(8, 145, 178)
	pdf.CellFormat(0, 12, "Courier Service Invoice", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, data.InvoiceNumber, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func addSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetTextColor(15, 23, 42)
		pdf.MultiCell(0, 6, row[1], "", "L", false)
	}
	pdf.Ln(3)
}

func addTotal(pdf *fpdf.Fpdf, data paymentTypes.InvoiceData) {
	pdf.SetFillColor(8, 145, 178)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 12, fmt.Sprintf("Total Paid: %s", data.Amount.StringFixed(2)), "", 1, "C", true, 0, "")
	pdf.Ln(4)
}

func addFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "Thank you for shipping with us.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", time.Now().Format(timeLayout)), "", 1, "C", false, 0, "")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}
