package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

const identityKey = "identity"

// IdentityFrom extracts the verified identity stored by RequireAuth or
// RequireAdmin, if any.
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(identityKey).(auth.Identity)
	return id, ok
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	typ, token, found := strings.Cut(header, " ")
	if !found || typ != "Bearer" || token == "" {
		return "", false
	}
	return token, true
}

func deny(c *fiber.Ctx, status int, code api.ErrorCode, msg string) error {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return c.Status(status).JSON(resp)
}

// RequireAuth admits any request carrying a valid bearer token and
// stores the verified identity in request locals.
func RequireAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return deny(c, http.StatusUnauthorized, api.UNAUTHORIZED, "missing or malformed Authorization header")
		}
		id, err := tokens.Verify(token)
		if err != nil {
			return deny(c, http.StatusUnauthorized, api.UNAUTHORIZED, "invalid token")
		}
		c.Locals(identityKey, id)
		return c.Next()
	}
}

// RequireAdmin admits only identities holding the admin role. The role
// check is an explicit Authorize call, not a side effect of routing.
func RequireAdmin(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return deny(c, http.StatusUnauthorized, api.UNAUTHORIZED, "missing or malformed Authorization header")
		}
		id, err := tokens.Verify(token)
		if err != nil {
			return deny(c, http.StatusUnauthorized, api.UNAUTHORIZED, "invalid token")
		}
		if err := auth.Authorize(id, entities.RoleAdmin); err != nil {
			return deny(c, http.StatusForbidden, api.FORBIDDEN, "admin role required")
		}
		c.Locals(identityKey, id)
		return c.Next()
	}
}
