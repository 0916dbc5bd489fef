package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
	"github.com/H1dayet/StoreMonitoring/internal/mapper"
)

// GetUsers lists all accounts, hashes stripped.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

// PostUsers creates an account.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}
	user, err := h.uc.CreateUser(c.Context(), entities.User{
		Username: body.Username,
		Name:     body.Name,
		Role:     entities.UserRole(body.Role),
		Active:   active,
	}, body.Password)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error(), "username", body.Username)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}

// PatchUser applies a partial update to an account.
func (h *Handler) PatchUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	patch := entities.UserPatch{
		Name:     body.Name,
		Active:   body.Active,
		Password: body.Password,
	}
	if body.Role != nil {
		role := entities.UserRole(*body.Role)
		patch.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Context(), c.Params("id"), patch)
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error(), "user_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// DeleteUser removes an account and echoes the removed record.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	user, err := h.uc.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error(), "user_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}
