package handlers

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/internal/api/presenters"
	"Pantry-Backend/pkg/scale"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScaleHandler interface {
		AddReading(c *fiber.Ctx) error
		GetCurrentWeight(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	scaleHandler struct {
		scaleService scale.ScaleService
		validator    *validator.Validate
	}
)

func NewScaleHandler(scaleService scale.ScaleService, validator *validator.Validate) ScaleHandler {
	return &scaleHandler{
		scaleService: scaleService,
		validator:    validator,
	}
}

func (h *scaleHandler) AddReading(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddReadingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReading, err)
	}

	res, err := h.scaleService.AddReading(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReading, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReading)
}

func (h *scaleHandler) GetCurrentWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	barcodeValue := c.Params("barcode")

	res, err := h.scaleService.GetCurrentWeight(c.Context(), userID, barcodeValue)
	if err != nil {
		if errors.Is(err, domain.ErrNoReadings) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCurrent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCurrent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCurrent)
}

func (h *scaleHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	barcodeValue := c.Params("barcode")

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	res, err := h.scaleService.GetHistory(c.Context(), userID, barcodeValue, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
