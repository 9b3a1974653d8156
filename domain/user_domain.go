package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetProfile      = "failed to retrieve profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"

	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrAccountAlreadyVerified = errors.New("account already verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"omitempty,e164"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Phone          string `json:"phone" validate:"omitempty,e164"`
		NotifyByEmail  *bool  `json:"notify_by_email" validate:"omitempty"`
		NotifyBySMS    *bool  `json:"notify_by_sms" validate:"omitempty"`
		ExpiryLeadDays *int   `json:"expiry_lead_days" validate:"omitempty,min=1,max=30"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	VerifyEmailRequest struct {
		Token string `json:"token" validate:"required"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		Phone          string    `json:"phone,omitempty"`
		Role           string    `json:"role"`
		IsVerified     bool      `json:"is_verified"`
		NotifyByEmail  bool      `json:"notify_by_email"`
		NotifyBySMS    bool      `json:"notify_by_sms"`
		ExpiryLeadDays int       `json:"expiry_lead_days"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
