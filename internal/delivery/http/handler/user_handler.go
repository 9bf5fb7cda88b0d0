package handler

import (
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	Name               string `json:"name"`
	Avatar             string `json:"avatar"`
	Resume             string `json:"resume"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	CompanyLogo        string `json:"companyLogo"`
}

type deleteResumeRequest struct {
	ResumeURL string `json:"resumeUrl"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Put("/profile", h.UpdateProfile, auth)
	r.Post("/resume", h.DeleteResume, auth)
	r.Get("/:id", h.PublicProfile)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), actor, usecase.UpdateProfileInput{
		Name:               req.Name,
		Avatar:             req.Avatar,
		Resume:             req.Resume,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyLogo:        req.CompanyLogo,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}

func (h *UserHandler) DeleteResume(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req deleteResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteResume(c.Context(), actor, req.ResumeURL); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume deleted successfully", nil)
}

func (h *UserHandler) PublicProfile(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	usr, err := h.uc.PublicProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}
