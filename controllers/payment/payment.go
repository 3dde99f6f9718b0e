package payment

import (
	"errors"
	"fmt"
	"time"

	"courier-booking/logger"
	bookingModel "courier-booking/models/booking"
	paymentModel "courier-booking/models/payment"
	"courier-booking/services/invoice"
	"courier-booking/types"
	paymentTypes "courier-booking/types/payment"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController handles the simulated card payment and invoices.
type PaymentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewPaymentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{DB: db, Logger: asyncLogger}
}

var (
	errDuplicatePayment = errors.New("payment already exists for this booking")
	errPaymentMissing   = errors.New("payment not found for this booking")
)

// Process charges the (simulated) card, writes the single Payment row and
// moves the booking NEW -> BOOKED in one transaction. A second attempt for
// the same booking fails and leaves the booking untouched.
func (pc *PaymentController) Process(c *fiber.Ctx) error {
	var req paymentTypes.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse payment request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	var created paymentModel.Payment

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("booking_id = ?", req.BookingID).First(&b).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&paymentModel.Payment{}).Where("booking_id = ?", b.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicatePayment
		}

		if err := b.ParcelStatus.Transition(bookingModel.StatusBooked); err != nil {
			return err
		}

		paymentTime := time.Now()
		created = paymentModel.Payment{
			BookingID:      b.ID,
			PaymentID:      utils.GeneratePaymentID(),
			TransactionID:  utils.GenerateTransactionID(),
			InvoiceNumber:  utils.GenerateInvoiceNumber(b.BookingID),
			Amount:         b.ParcelServiceCost,
			CardLastFour:   utils.MaskCardNumber(req.CardNumber),
			CardholderName: req.CardholderName,
			PaymentTime:    paymentTime,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		b.ParcelStatus = bookingModel.StatusBooked
		b.ParcelPaymentTime = &paymentTime
		return tx.Save(&b).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, req.BookingID)
	}
	if errors.Is(err, errDuplicatePayment) {
		return badRequest(c, "Payment already exists for this booking")
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Payment rejected for booking %s", req.BookingID), err)
		return badRequest(c, err.Error())
	}

	pc.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Payment %s processed for booking %s", created.PaymentID, req.BookingID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Payment processed successfully",
		Status:  fiber.StatusOK,
		Data:    created,
	})
}

// Invoice returns the invoice payload for a paid booking as JSON.
func (pc *PaymentController) Invoice(c *fiber.Ctx) error {
	data, err := pc.invoiceData(c.Params("bookingId"))
	if err != nil {
		return pc.invoiceError(c, c.Params("bookingId"), err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Invoice generated successfully",
		Status:  fiber.StatusOK,
		Data:    data,
	})
}

// DownloadInvoice streams the invoice as a PDF attachment.
func (pc *PaymentController) DownloadInvoice(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	data, err := pc.invoiceData(bookingID)
	if err != nil {
		return pc.invoiceError(c, bookingID, err)
	}

	pdfBytes, err := invoice.Render(*data)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to render invoice PDF for booking %s", bookingID), err)
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "invoice_"+bookingID+".pdf"))
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}

// invoiceData loads the payment with its booking and flattens both into
// the invoice payload.
func (pc *PaymentController) invoiceData(bookingID string) (*paymentTypes.InvoiceData, error) {
	var b bookingModel.Booking
	if err := pc.DB.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		return nil, err
	}

	var p paymentModel.Payment
	if err := pc.DB.Where("booking_id = ?", b.ID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPaymentMissing
		}
		return nil, err
	}

	return &paymentTypes.InvoiceData{
		BookingID:          b.BookingID,
		PaymentID:          p.PaymentID,
		TransactionID:      p.TransactionID,
		InvoiceNumber:      p.InvoiceNumber,
		ReceiverName:       b.ReceiverName,
		ReceiverAddress:    b.ReceiverAddress,
		ReceiverPin:        b.ReceiverPin,
		ReceiverMobile:     b.ReceiverMobile,
		ParcelWeightInGram: b.ParcelWeightInGram,
		ParcelContents:     b.ParcelContentsDescription,
		DeliveryType:       string(b.ParcelDeliveryType),
		PackingPreference:  string(b.ParcelPackingPreference),
		PickupTime:         b.ParcelPickupTime,
		DropoffTime:        b.ParcelDropoffTime,
		Amount:             p.Amount,
		PaymentTime:        p.PaymentTime,
	}, nil
}

func (pc *PaymentController) invoiceError(c *fiber.Ctx, bookingID string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, bookingID)
	}
	if errors.Is(err, errPaymentMissing) {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: fmt.Sprintf("No payment found for booking %s", bookingID),
			Status:  fiber.StatusNotFound,
		})
	}
	logger.Error(fmt.Sprintf("Failed to load invoice data for booking %s", bookingID), err)
	return internalError(c)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusBadRequest,
	})
}

func notFound(c *fiber.Ctx, bookingID string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Booking %s not found", bookingID),
		Status:  fiber.StatusNotFound,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
	})
}
