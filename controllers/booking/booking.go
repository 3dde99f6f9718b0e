package booking

import (
	"errors"
	"fmt"
	"time"

	"courier-booking/constants"
	"courier-booking/logger"
	bookingModel "courier-booking/models/booking"
	customerModel "courier-booking/models/customer"
	"courier-booking/services/pagination"
	"courier-booking/services/pricing"
	"courier-booking/types"
	bookingTypes "courier-booking/types/booking"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingController handles booking creation, listing, tracking and the
// status lifecycle.
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Logger: asyncLogger}
}

// Store creates a customer self-service booking. The price excludes the
// admin fee and the parcel starts in NEW, awaiting payment.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	return bc.create(c, false)
}

// StoreOfficer creates an officer-assisted booking: the admin fee applies
// and payment is taken with creation, so the parcel starts in BOOKED.
func (bc *BookingController) StoreOfficer(c *fiber.Ctx) error {
	return bc.create(c, true)
}

func (bc *BookingController) create(c *fiber.Ctx, officerAssisted bool) error {
	var req bookingTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}
	if req.ParcelPickupTime != nil && req.ParcelPickupTime.Before(now.BeginningOfDay()) {
		return badRequest(c, "Pickup time must not be in the past")
	}

	userID, _ := c.Locals("userId").(uint)
	var cust customerModel.Customer
	if err := bc.DB.First(&cust, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorizedResponse(c, "Access denied")
		}
		logger.Error("Database error while loading customer", err)
		return internalError(c)
	}

	cost := pricing.ServiceCost(
		req.ParcelWeightInGram,
		bookingModel.DeliveryType(req.ParcelDeliveryType),
		bookingModel.PackingPreference(req.ParcelPackingPreference),
		officerAssisted,
	)

	status := bookingModel.StatusNew
	var paymentTime *time.Time
	if officerAssisted {
		status = bookingModel.StatusBooked
		t := time.Now()
		paymentTime = &t
	}

	b := bookingModel.Booking{
		BookingID:                 utils.GenerateBookingID(),
		CustomerID:                cust.ID,
		ReceiverName:              req.ReceiverName,
		ReceiverAddress:           req.ReceiverAddress,
		ReceiverPin:               req.ReceiverPin,
		ReceiverMobile:            req.ReceiverMobile,
		ParcelWeightInGram:        req.ParcelWeightInGram,
		ParcelContentsDescription: req.ParcelContentsDescription,
		ParcelDeliveryType:        bookingModel.DeliveryType(req.ParcelDeliveryType),
		ParcelPackingPreference:   bookingModel.PackingPreference(req.ParcelPackingPreference),
		ParcelServiceCost:         cost,
		ParcelPickupTime:          req.ParcelPickupTime,
		ParcelDropoffTime:         req.ParcelDropoffTime,
		ParcelPaymentTime:         paymentTime,
		ParcelStatus:              status,
	}

	if err := bc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&b).Error
	}); err != nil {
		logger.Error("Failed to save booking", err)
		return internalError(c)
	}

	var created bookingModel.Booking
	if err := bc.DB.Preload("Customer").First(&created, b.ID).Error; err != nil {
		logger.Error("Failed to load created booking", err)
		return internalError(c)
	}

	bc.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Booking %s created with status %s", created.BookingID, created.ParcelStatus))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Index lists the requesting customer's bookings, newest first.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("page"), c.Query("size"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	userID, _ := c.Locals("userId").(uint)
	mine := func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", userID)
	}
	return bc.listBookings(c, params, mine)
}

// IndexOfficer lists every booking in the system, newest first.
func (bc *BookingController) IndexOfficer(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("page"), c.Query("size"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	all := func(db *gorm.DB) *gorm.DB { return db }
	return bc.listBookings(c, params, all)
}

func (bc *BookingController) listBookings(c *fiber.Ctx, params pagination.Params, scope func(*gorm.DB) *gorm.DB) error {
	var total int64
	if err := scope(bc.DB.Model(&bookingModel.Booking{})).Count(&total).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return internalError(c)
	}

	var bookings []bookingModel.Booking
	err := scope(bc.DB.Model(&bookingModel.Booking{})).
		Preload("Customer").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Size).
		Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    pagination.NewPage(bookings, total, params),
	})
}

// Track returns one booking by its external id. Customers may only track
// their own parcels; officers may track any.
func (bc *BookingController) Track(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var b bookingModel.Booking
	err := bc.DB.Preload("Customer").Where("booking_id = ?", bookingID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, bookingID)
	}
	if err != nil {
		logger.Error("Database error while tracking booking", err)
		return internalError(c)
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("userId").(uint)
	if role != constants.RoleOfficer && b.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Access denied",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

// UpdateStatus progresses a parcel along the delivery path
// (BOOKED -> IN_TRANSIT -> DELIVERED). Officer only.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req bookingTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse status update request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	return bc.transition(c, bookingID, bookingModel.BookingStatus(req.Status), "Delivery status updated successfully")
}

// Cancel moves a BOOKED parcel to CANCELLED. Permitted for the owning
// customer or an officer; rejected once the parcel is in transit.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	role, _ := c.Locals("role").(string)
	if role != constants.RoleOfficer {
		userID, _ := c.Locals("userId").(uint)
		var b bookingModel.Booking
		err := bc.DB.Where("booking_id = ?", bookingID).First(&b).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, bookingID)
		}
		if err != nil {
			logger.Error("Database error while loading booking", err)
			return internalError(c)
		}
		if b.CustomerID != userID {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Access denied",
				Status:  fiber.StatusForbidden,
			})
		}
	}

	return bc.transition(c, bookingID, bookingModel.StatusCancelled, "Booking cancelled successfully")
}

// transition applies a status change atomically. The guard is re-checked
// inside the transaction so an invalid move never persists.
func (bc *BookingController) transition(c *fiber.Ctx, bookingID string, next bookingModel.BookingStatus, successMsg string) error {
	var updated bookingModel.Booking

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
			return err
		}
		if err := b.ParcelStatus.Transition(next); err != nil {
			return err
		}
		b.ParcelStatus = next
		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		updated = b
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, bookingID)
	}
	if err != nil {
		// Transition guard errors carry the specific conflict message.
		logger.Error(fmt.Sprintf("Status change rejected for booking %s", bookingID), err)
		return badRequest(c, err.Error())
	}

	bc.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Booking %s moved to %s", bookingID, next))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: successMsg,
		Status:  fiber.StatusOK,
		Data:    updated,
	})
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

func unauthorizedResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
	})
}
