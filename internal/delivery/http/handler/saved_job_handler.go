package handler

import (
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedJobHandler struct {
	uc usecase.SavedJobUsecase
}

func NewSavedJobHandler(uc usecase.SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

func (h *SavedJobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/:jobId", h.Save, auth)
	r.Delete("/:jobId", h.Unsave, auth)
	r.Get("/my", h.ListMine, auth)
}

func (h *SavedJobHandler) Save(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.Save(c.Context(), actor, jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job saved successfully", nil)
}

func (h *SavedJobHandler) Unsave(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.Unsave(c.Context(), actor, jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job removed from saved list", nil)
}

func (h *SavedJobHandler) ListMine(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	saved, err := h.uc.ListMine(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved)
}
