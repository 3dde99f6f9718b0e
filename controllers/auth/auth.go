package auth

import (
	"errors"
	"fmt"
	"time"

	"courier-booking/config"
	"courier-booking/constants"
	"courier-booking/logger"
	customerModel "courier-booking/models/customer"
	"courier-booking/types"
	authTypes "courier-booking/types/auth"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController handles registration, login and password changes.
type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.AppConfig
	Logger *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, cfg *config.AppConfig, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Logger: asyncLogger}
}

// Register creates a customer or officer account and returns a token so the
// client is logged in immediately.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse register request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	var existing customerModel.Customer
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return badRequest(c, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking email", err)
		return internalError(c)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), ac.Cfg.BcryptCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return internalError(c)
	}

	cust := customerModel.Customer{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Password:      string(hashed),
		CountryCode:   req.CountryCode,
		MobileNumber:  req.MobileNumber,
		Address:       req.Address,
		Role:          req.Role,
		UniqueID:      utils.GenerateUniqueID(req.Role),
		GetUpdatesVia: req.Preferences,
	}

	if err := ac.DB.Create(&cust).Error; err != nil {
		logger.Error("Failed to create customer", err)
		return internalError(c)
	}

	token, err := ac.issueToken(cust)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return internalError(c)
	}

	ac.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Registered %s account %s", cust.Role, cust.UniqueID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful for: " + cust.CustomerName,
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    profileOf(cust),
	})
}

// Login authenticates a customer by unique id. Officer accounts are turned
// away towards the officer login without confirming they exist.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return ac.login(c, constants.RoleCustomer, "Invalid Customer ID or password")
}

// OfficerLogin authenticates an officer by unique id.
func (ac *AuthController) OfficerLogin(c *fiber.Ctx) error {
	return ac.login(c, constants.RoleOfficer, "Invalid Officer ID or password")
}

func (ac *AuthController) login(c *fiber.Ctx, wantRole string, genericMsg string) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse login request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	var cust customerModel.Customer
	err := ac.DB.Where("unique_id = ?", req.UniqueID).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return unauthorizedResponse(c, genericMsg)
	}
	if err != nil {
		logger.Error("Database error during login", err)
		return internalError(c)
	}

	if cust.Role != wantRole {
		return unauthorizedResponse(c, "Access denied")
	}

	if bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(req.Password)) != nil {
		return unauthorizedResponse(c, genericMsg)
	}

	token, err := ac.issueToken(cust)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return internalError(c)
	}

	ac.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("%s %s logged in", cust.Role, cust.UniqueID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    profileOf(cust),
	})
}

// ChangePassword verifies the current password before storing a new hash.
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req authTypes.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse change-password request", err)
		return badRequest(c, "Invalid request body")
	}
	if msg := req.Validate(); msg != "" {
		return badRequest(c, msg)
	}

	userID, _ := c.Locals("userId").(uint)

	var cust customerModel.Customer
	if err := ac.DB.First(&cust, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorizedResponse(c, "Access denied")
		}
		logger.Error("Database error during password change", err)
		return internalError(c)
	}

	if bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(req.CurrentPassword)) != nil {
		return badRequest(c, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), ac.Cfg.BcryptCost)
	if err != nil {
		logger.Error("Failed to hash new password", err)
		return internalError(c)
	}

	if err := ac.DB.Model(&cust).Update("password", string(hashed)).Error; err != nil {
		logger.Error("Failed to update password", err)
		return internalError(c)
	}

	ac.Logger.Log(utils.SanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("Password updated for %s", cust.UniqueID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password updated successfully",
		Status:  fiber.StatusOK,
	})
}

func (ac *AuthController) issueToken(cust customerModel.Customer) (string, error) {
	ttl := time.Duration(ac.Cfg.JWTExpiryHours) * time.Hour
	return utils.GenerateToken(ac.Cfg.JWTSecret, cust.Email, cust.ID, cust.Role, ttl)
}

func profileOf(cust customerModel.Customer) authTypes.Profile {
	return authTypes.Profile{
		ID:            cust.ID,
		CustomerName:  cust.CustomerName,
		Email:         cust.Email,
		CountryCode:   cust.CountryCode,
		MobileNumber:  cust.MobileNumber,
		Address:       cust.Address,
		Role:          cust.Role,
		UniqueID:      cust.UniqueID,
		GetUpdatesVia: cust.GetUpdatesVia,
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusBadRequest,
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
