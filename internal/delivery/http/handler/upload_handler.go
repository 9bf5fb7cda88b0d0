package handler

import (
	"errors"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/upload"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/", h.Upload, auth)
}

// Upload accepts a single multipart file under "file" (or "image", the
// field the avatar form uses) and returns its public URL.
func (h *UploadHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		fh, err = c.FormFile("image")
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}

	url, err := h.store.Save(fh)
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrDisallowedType) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, fiber.Map{"url": url})
}
