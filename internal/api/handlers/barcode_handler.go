package handlers

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/internal/api/presenters"
	"Pantry-Backend/pkg/barcode"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BarcodeHandler interface {
		ResolveProduct(c *fiber.Ctx) error
		SetExpiryOverride(c *fiber.Ctx) error
	}

	barcodeHandler struct {
		barcodeService barcode.BarcodeService
		validator      *validator.Validate
	}
)

func NewBarcodeHandler(barcodeService barcode.BarcodeService, validator *validator.Validate) BarcodeHandler {
	return &barcodeHandler{
		barcodeService: barcodeService,
		validator:      validator,
	}
}

func (h *barcodeHandler) ResolveProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	barcodeValue := c.Params("barcode")

	res, err := h.barcodeService.ResolveProduct(c.Context(), barcodeValue, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			message := fmt.Sprintf("%s: %s", domain.MessageProductNotFound, barcodeValue)
			return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
		}
		if errors.Is(err, domain.ErrInvalidBarcode) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResolveProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveProduct)
}

func (h *barcodeHandler) SetExpiryOverride(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetExpiryOverrideRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetOverride, err)
	}

	if err := h.barcodeService.SetExpiryOverride(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetOverride, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetOverride)
}
