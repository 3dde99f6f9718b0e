package feedback

import (
	"errors"
	"fmt"
	"strings"

	"courier-booking/logger"
	bookingModel "courier-booking/models/booking"
	feedbackModel "courier-booking/models/feedback"
	"courier-booking/services/pagination"
	"courier-booking/types"
	feedbackTypes "courier-booking/types/feedback"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FeedbackController handles post-delivery feedback and the officer review
// listing.
type FeedbackController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewFeedbackController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *FeedbackController {
	return &FeedbackController{DB: db, Logger: asyncLogger}
}

// Add stores feedback for a delivered booking. Only the owning customer may
// submit, only after delivery, and only once per booking.
func (fc *FeedbackController) Add(c *fiber.Ctx) error {
	var req feedbackTypes.AddRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse feedback request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	userID, _ := c.Locals("userId").(uint)

	var b bookingModel.Booking
	err := fc.DB.Where("booking_id = ?", req.BookingID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Booking %s not found", req.BookingID),
			Status:  fiber.StatusNotFound,
		})
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

	if b.ParcelStatus != bookingModel.StatusDelivered {
		return badRequest(c, "Feedback can only be added for delivered parcels")
	}

	var count int64
	if err := fc.DB.Model(&feedbackModel.Feedback{}).Where("booking_id = ?", b.ID).Count(&count).Error; err != nil {
		logger.Error("Database error while checking existing feedback", err)
		return internalError(c)
	}
	if count > 0 {
		return badRequest(c, "Feedback already exists for this booking")
	}

	fb := feedbackModel.Feedback{
		BookingID:           b.ID,
		CustomerID:          userID,
		Rating:              req.Rating,
		FeedbackDescription: req.Description,
	}
	if err := fc.DB.Create(&fb).Error; err != nil {
		logger.Error("Failed to save feedback", err)
		return internalError(c)
	}

	fc.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Feedback added for booking %s (rating %d)", req.BookingID, req.Rating))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Feedback added successfully",
		Status:  fiber.StatusCreated,
		Data:    fb,
	})
}

// IndexOfficer lists feedback for officers, newest first. An optional
// filter string is matched case-insensitively against customer name first,
// then booking id, then feedback description; whichever attribute matches
// first supplies the result set, and no match at all yields an empty page.
func (fc *FeedbackController) IndexOfficer(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("page"), c.Query("size"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := strings.TrimSpace(c.Query("filter"))
	if filter == "" {
		all := func(db *gorm.DB) *gorm.DB { return db }
		return fc.listFeedback(c, params, all)
	}

	pattern := "%" + strings.ToLower(filter) + "%"
	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN customers ON customers.id = feedbacks.customer_id").
				Where("LOWER(customers.customer_name) LIKE ?", pattern)
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN bookings ON bookings.id = feedbacks.booking_id").
				Where("LOWER(bookings.booking_id) LIKE ?", pattern)
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(feedbacks.feedback_description) LIKE ?", pattern)
		},
	}

	for _, scope := range scopes {
		var total int64
		if err := scope(fc.DB.Model(&feedbackModel.Feedback{})).Count(&total).Error; err != nil {
			logger.Error("Failed to count filtered feedback", err)
			return internalError(c)
		}
		if total > 0 {
			return fc.listFeedback(c, params, scope)
		}
	}

	// Nothing matched on any attribute: an empty page, not an error.
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Feedback retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    pagination.NewPage([]feedbackModel.Feedback{}, 0, params),
	})
}

func (fc *FeedbackController) listFeedback(c *fiber.Ctx, params pagination.Params, scope func(*gorm.DB) *gorm.DB) error {
	var total int64
	if err := scope(fc.DB.Model(&feedbackModel.Feedback{})).Count(&total).Error; err != nil {
		logger.Error("Failed to count feedback", err)
		return internalError(c)
	}

	var feedbacks []feedbackModel.Feedback
	err := scope(fc.DB.Model(&feedbackModel.Feedback{})).
		Preload("Customer").
		Preload("Booking").
		Order("feedbacks.created_at DESC").
		Offset(params.Offset()).
		Limit(params.Size).
		Find(&feedbacks).Error
	if err != nil {
		logger.Error("Failed to list feedback", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Feedback retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    pagination.NewPage(feedbacks, total, params),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusBadRequest,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
	})
}
