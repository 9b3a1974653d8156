package domain

import (
	"errors"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	NotificationSent   = "Sent"
	NotificationFailed = "Failed"
)

var (
	ErrNoRecipientAddress = errors.New("user has no address for channel")
)

type (
	// ExpiryAlert is one item a user should be warned about.
	ExpiryAlert struct {
		ItemID     string
		ItemName   string
		ExpiryDate string
		DaysLeft   int
	}
)
