package handler

import (
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type updateStatusRequest struct {
	Status application.Status `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/:jobId", h.Apply, auth)
	r.Get("/me", h.ListMine, auth)
	r.Get("/job/:jobId", h.ListForJob, auth)
	r.Get("/:id", h.Get, auth)
	r.Put("/:id/status", h.UpdateStatus, auth)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	created, err := h.uc.Apply(c.Context(), actor, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ListMine(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForJob(c.Context(), actor, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	app, err := h.uc.Get(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.UpdateStatus(c.Context(), actor, id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated successfully", app)
}
