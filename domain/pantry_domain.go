package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem      = "pantry item added successfully"
	MessageSuccessUpdateItem   = "pantry item updated successfully"
	MessageSuccessDeleteItem   = "pantry item deleted successfully"
	MessageSuccessGetItems     = "pantry items retrieved successfully"
	MessageSuccessConsumeItem  = "pantry item marked as consumed"
	MessageSuccessWasteItem    = "pantry item marked as wasted"
	MessageSuccessUploadImage  = "item image uploaded successfully"
	MessageSuccessGetDashboard = "dashboard statistics retrieved successfully"

	MessageFailedAddItem      = "failed to add pantry item"
	MessageFailedUpdateItem   = "failed to update pantry item"
	MessageFailedDeleteItem   = "failed to delete pantry item"
	MessageFailedGetItems     = "failed to retrieve pantry items"
	MessageFailedConsumeItem  = "failed to mark pantry item as consumed"
	MessageFailedWasteItem    = "failed to mark pantry item as wasted"
	MessageFailedUploadImage  = "failed to upload item image"
	MessageFailedGetDashboard = "failed to retrieve dashboard statistics"

	ErrItemNotFound      = errors.New("pantry item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrItemNotActive     = errors.New("pantry item already consumed or wasted")
	ErrUnauthorizedItem  = errors.New("unauthorized access to pantry item")
)

type (
	AddItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Barcode     string `json:"barcode" validate:"omitempty,numeric,min=8,max=13"`
		Quantity    int    `json:"quantity" validate:"required,min=1"`
		UnitMeasure string `json:"unit_measure" validate:"required"`
		Category    string `json:"category" validate:"omitempty"`
		// Optional; when omitted and a barcode is given, the expiry is derived
		// from the user's override or the product default.
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	UpdateItemRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
		UnitMeasure string `json:"unit_measure" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MarkItemRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}

	ItemResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Barcode     string    `json:"barcode,omitempty"`
		Quantity    int       `json:"quantity"`
		UnitMeasure string    `json:"unit_measure"`
		Category    string    `json:"category"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Status      string    `json:"status"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems       int     `json:"total_items"`
		SafeItems        int     `json:"safe_items"`
		WarningItems     int     `json:"warning_items"`
		ExpiredItems     int     `json:"expired_items"`
		ConsumedItems    int     `json:"consumed_items"`
		WastedItems      int     `json:"wasted_items"`
		EstimatedSavings float64 `json:"estimated_savings"`
	}
)
