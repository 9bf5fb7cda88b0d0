package handler

import (
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/employer", h.EmployerDashboard, auth)
}

func (h *AnalyticsHandler) EmployerDashboard(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	dashboard, err := h.uc.EmployerDashboard(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dashboard)
}
