package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/mapper"
)

// GetStores lists the store directory ordered by code.
func (h *Handler) GetStores(c *fiber.Ctx) error {
	stores, err := h.uc.Stores(c.Context())
	if err != nil {
		h.log.Errorw("failed to list stores", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStoreList(stores))
}

// PostStores adds a store to the directory.
func (h *Handler) PostStores(c *fiber.Ctx) error {
	var body api.CreateStoreRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	store, err := h.uc.CreateStore(c.Context(), body.Code, body.Name)
	if err != nil {
		h.log.Errorw("failed to add store", "error", err.Error(), "code", body.Code)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIStore(*store))
}

// DeleteStore removes a store by code.
func (h *Handler) DeleteStore(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.uc.DeleteStore(c.Context(), code); err != nil {
		h.log.Errorw("failed to delete store", "error", err.Error(), "code", code)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Deleted bool `json:"deleted"`
	}{Deleted: true})
}
