package handler

import (
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Type         job.Type `json:"type"`
	SalaryMin    int64    `json:"salaryMin"`
	SalaryMax    int64    `json:"salaryMax"`
}

type updateJobRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Requirements *string   `json:"requirements"`
	Location     *string   `json:"location"`
	Category     *string   `json:"category"`
	Type         *job.Type `json:"type"`
	SalaryMin    *int64    `json:"salaryMin"`
	SalaryMax    *int64    `json:"salaryMax"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/", h.Create, auth)
	r.Get("/", h.Search)
	r.Get("/employer", h.ListForEmployer, auth)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update, auth)
	r.Delete("/:id", h.Delete, auth)
	r.Put("/:id/toggle-close", h.ToggleClose, auth)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actor, usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Category:     req.Category,
		Type:         req.Type,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

// Search is the public filtered listing. An optional userId query makes
// the results viewer-aware (isSaved, applicationStatus).
func (h *JobHandler) Search(c fiber.Ctx) error {
	minSalary, err := queryInt64(c, "minSalary")
	if err != nil {
		return err
	}
	maxSalary, err := queryInt64(c, "maxSalary")
	if err != nil {
		return err
	}
	viewerID, err := queryUUID(c, "userId")
	if err != nil {
		return err
	}

	f := job.Filter{
		Keyword:    c.Query("keyword"),
		Location:   c.Query("location"),
		Types:      queryList(c, "type"),
		Categories: queryList(c, "category"),
		MinSalary:  minSalary,
		MaxSalary:  maxSalary,
	}

	views, err := h.uc.Search(c.Context(), f, viewerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, views)
}

func (h *JobHandler) ListForEmployer(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListForEmployer(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	viewerID, err := queryUUID(c, "userId")
	if err != nil {
		return err
	}

	view, err := h.uc.GetByID(c.Context(), id, viewerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actor, id, usecase.UpdateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Category:     req.Category,
		Type:         req.Type,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) ToggleClose(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	closed, err := h.uc.ToggleClose(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Job reopened successfully"
	if closed {
		msg = "Job marked as closed"
	}
	return response.Success(c, fiber.StatusOK, msg, fiber.Map{"isClosed": closed})
}
