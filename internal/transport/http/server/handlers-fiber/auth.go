package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/mapper"
)

// PostAuthLogin exchanges credentials for a signed token.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	token, user, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		h.log.Warnw("login rejected", "username", body.Username)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		Token: token,
		User:  mapper.ToAPIUser(*user),
	})
}
