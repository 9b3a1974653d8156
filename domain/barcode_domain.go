package domain

import (
	"errors"
)

var (
	MessageSuccessResolveProduct = "product resolved successfully"
	MessageSuccessSetOverride    = "expiry override saved successfully"

	MessageFailedResolveProduct = "failed to resolve product"
	MessageFailedSetOverride    = "failed to save expiry override"
	MessageProductNotFound      = "No product found for barcode"

	ErrInvalidBarcode  = errors.New("barcode must be 8 to 13 digits")
	ErrProductNotFound = errors.New("product not found")
)

type (
	// ExternalProduct is the normalized payload of an external directory hit,
	// before heuristic enrichment.
	ExternalProduct struct {
		Barcode         string
		Name            string
		Brand           string
		Categories      string
		Unit            string
		ImageURL        string
		CaloriesPer100g float64
		ProteinPer100g  float64
		CarbsPer100g    float64
		FatPer100g      float64
	}

	ResolveProductResponse struct {
		Barcode           string         `json:"barcode"`
		Name              string         `json:"name"`
		Brand             string         `json:"brand,omitempty"`
		Category          string         `json:"category"`
		DefaultExpiryDays int            `json:"default_expiry_days"`
		Unit              string         `json:"unit,omitempty"`
		ImageURL          string         `json:"image_url,omitempty"`
		Source            string         `json:"source"` // "local", "external"
		Nutrition         map[string]any `json:"nutrition,omitempty"`
		OverrideDays      *int           `json:"override_days,omitempty"`
	}

	SetExpiryOverrideRequest struct {
		Barcode    string `json:"barcode" validate:"required,numeric,min=8,max=13"`
		ExpiryDays int    `json:"expiry_days" validate:"required,min=1,max=3650"`
	}
)
