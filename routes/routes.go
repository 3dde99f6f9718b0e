package routes

import (
	"courier-booking/config"
	"courier-booking/constants"
	authController "courier-booking/controllers/auth"
	bookingController "courier-booking/controllers/booking"
	feedbackController "courier-booking/controllers/feedback"
	paymentController "courier-booking/controllers/payment"
	"courier-booking/logger"
	"courier-booking/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires controllers, the role-gate middleware and the async
// audit logger onto the Fiber app.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.AppConfig) {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	auth := authController.NewAuthController(db, cfg, asyncLogger)
	bookings := bookingController.NewBookingController(db, asyncLogger)
	payments := paymentController.NewPaymentController(db, asyncLogger)
	feedback := feedbackController.NewFeedbackController(db, asyncLogger)

	guard := middleware.NewAuth(cfg.JWTSecret)

	api := app.Group("/api")

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/officer-login", auth.OfficerLogin)
	authGroup.Post("/change-password", guard.RequireAuth(), auth.ChangePassword)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", guard.RequireRole(constants.RoleCustomer), bookings.Store)
	bookingGroup.Post("/officer", guard.RequireRole(constants.RoleOfficer), bookings.StoreOfficer)
	bookingGroup.Get("/", guard.RequireRole(constants.RoleCustomer), bookings.Index)
	bookingGroup.Get("/officer", guard.RequireRole(constants.RoleOfficer), bookings.IndexOfficer)
	bookingGroup.Get("/track/:bookingId", guard.RequireAuth(), bookings.Track)
	bookingGroup.Put("/:bookingId/status", guard.RequireRole(constants.RoleOfficer), bookings.UpdateStatus)
	bookingGroup.Put("/:bookingId/cancel", guard.RequireAuth(), bookings.Cancel)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	paymentGroup := api.Group("/payments")
	paymentGroup.Post("/", guard.RequireRole(constants.RoleCustomer), payments.Process)
	paymentGroup.Get("/:bookingId/invoice", guard.RequireAuth(), payments.Invoice)
	paymentGroup.Get("/invoice/:bookingId/download", guard.RequireAuth(), payments.DownloadInvoice)

	/*=============================================================================
	| Feedback Routes
	===============================================================================*/
	feedbackGroup := api.Group("/feedback")
	feedbackGroup.Post("/add", guard.RequireRole(constants.RoleCustomer), feedback.Add)
	feedbackGroup.Get("/officer/feedbacks", guard.RequireRole(constants.RoleOfficer), feedback.IndexOfficer)
}
