package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrStoreCodeNotNumeric):
		status = http.StatusBadRequest
		code = api.NOTNUMERIC
		msg = "store code must be a number"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "invalid credentials"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "admin role required"
	case errors.Is(err, entities.ErrIssueNotFound), errors.Is(err, entities.ErrStoreNotFound), errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrStoreExists):
		status = http.StatusBadRequest
		code = api.DUPLICATECODE
		msg = "store code already exists"
	case errors.Is(err, entities.ErrUsernameExists):
		status = http.StatusBadRequest
		code = api.DUPLICATEUSERNAME
		msg = "username already exists"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
