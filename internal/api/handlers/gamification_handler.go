package handlers

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/internal/api/presenters"
	"Pantry-Backend/pkg/gamification"

	"github.com/gofiber/fiber/v2"
)

type (
	GamificationHandler interface {
		GetSummary(c *fiber.Ctx) error
		GetWasteAnalytics(c *fiber.Ctx) error
	}

	gamificationHandler struct {
		gamificationService gamification.GamificationService
	}
)

func NewGamificationHandler(gamificationService gamification.GamificationService) GamificationHandler {
	return &gamificationHandler{gamificationService: gamificationService}
}

func (h *gamificationHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.gamificationService.GetSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *gamificationHandler) GetWasteAnalytics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.gamificationService.GetWasteAnalytics(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}
