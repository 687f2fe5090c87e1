package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"strconv"

	"github.com/campusfind/backend/internal/dto"
	"github.com/campusfind/backend/internal/models"
	"github.com/campusfind/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const recentItemsDefault = 6

// ImageUploader stores an uploaded photo and returns its public URL.
type ImageUploader interface {
	Upload(data []byte, mimeType, folder string) (string, error)
}

type ItemHandler struct {
	items   *services.ItemService
	uploads ImageUploader
}

func NewItemHandler(items *services.ItemService, uploads ImageUploader) *ItemHandler {
	return &ItemHandler{items: items, uploads: uploads}
}

// Create accepts the report form. The photo, if any, is uploaded first;
// an upload failure degrades to a report without an image rather than
// failing the submission.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		if url := h.uploadImage(fileHeader, req.Type); url != "" {
			req.ImageURL = url
		}
	}

	item, err := h.items.Create(&req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: ve.Error()})
		}
		slog.Error("item creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) uploadImage(fileHeader *multipart.FileHeader, folder string) string {
	f, err := fileHeader.Open()
	if err != nil {
		slog.Warn("failed to open uploaded image", "error", err)
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Warn("failed to read uploaded image", "error", err)
		return ""
	}

	url, err := h.uploads.Upload(data, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		slog.Warn("image upload failed, continuing without image", "error", err)
		return ""
	}
	return url
}

// List returns listings filtered by type, category and search term,
// most recent first.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	filter := dto.ItemFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
	}

	items, err := h.items.List(&filter)
	if err != nil {
		slog.Error("item listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch items"})
	}

	return c.JSON(fiber.Map{"items": items})
}

// Recent serves the home page preview of the newest reports.
func (h *ItemHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(recentItemsDefault)))
	if limit < 1 {
		limit = recentItemsDefault
	}

	items, err := h.items.List(&dto.ItemFilter{Type: c.Query("type"), Limit: limit})
	if err != nil {
		slog.Error("recent items query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch items"})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid item ID"})
	}

	item, err := h.items.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("item fetch failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch item"})
	}

	return c.JSON(item)
}

// Categories returns the fixed set the report form offers.
func (h *ItemHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.Categories})
}
