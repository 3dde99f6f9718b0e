package auth

import (
	"courier-booking/types"
)

// RegisterRequest creates a customer or officer account.
type RegisterRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	CountryCode  string `json:"country_code" validate:"required"`
	MobileNumber string `json:"mobile_number" validate:"required,min=7"`
	Address      string `json:"address" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=CUSTOMER OFFICER"`
	Preferences  string `json:"preferences" validate:"omitempty,oneof=EMAIL SMS BOTH"`
}

func (r RegisterRequest) Validate() string {
	return types.ValidationMessage(r)
}

// LoginRequest authenticates by unique id, not email.
type LoginRequest struct {
	UniqueID string `json:"unique_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() string {
	return types.ValidationMessage(r)
}

// ChangePasswordRequest mutates the password after verifying the current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (r ChangePasswordRequest) Validate() string {
	if msg := types.ValidationMessage(r); msg != "" {
		return msg
	}
	if r.NewPassword != r.ConfirmPassword {
		return "New password and confirm password do not match"
	}
	return ""
}

// Profile is the account payload returned by register and login.
type Profile struct {
	ID            uint   `json:"id"`
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	CountryCode   string `json:"country_code"`
	MobileNumber  string `json:"mobile_number"`
	Address       string `json:"address"`
	Role          string `json:"role"`
	UniqueID      string `json:"unique_id"`
	GetUpdatesVia string `json:"get_updates_via"`
}
