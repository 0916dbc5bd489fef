package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
	"github.com/H1dayet/StoreMonitoring/internal/mapper"
	"github.com/H1dayet/StoreMonitoring/internal/transport/http/middleware"
)

// GetIssues lists every issue, newest-first.
func (h *Handler) GetIssues(c *fiber.Ctx) error {
	issues, err := h.uc.Issues(c.Context())
	if err != nil {
		h.log.Errorw("failed to list issues", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIIssueList(issues))
}

// GetIssue fetches one issue by id.
func (h *Handler) GetIssue(c *fiber.Ctx) error {
	issue, err := h.uc.Issue(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIIssue(*issue))
}

// PostIssues reports a new downtime issue attributed to the caller.
func (h *Handler) PostIssues(c *fiber.Ctx) error {
	var body api.CreateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	var identity *auth.Identity
	if id, ok := middleware.IdentityFrom(c); ok {
		identity = &id
	}

	issue, err := h.uc.CreateIssue(c.Context(), entities.Issue{
		Title:       body.Title,
		Description: body.Description,
		StoreCode:   body.StoreCode,
		Severity:    entities.IssueSeverity(body.Severity),
		Reason:      entities.IssueReason(body.Reason),
	}, identity)
	if err != nil {
		h.log.Errorw("failed to create issue", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIIssue(*issue))
}

// PatchIssueStatus transitions an issue's lifecycle state.
func (h *Handler) PatchIssueStatus(c *fiber.Ctx) error {
	var body api.UpdateIssueStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	issue, err := h.uc.UpdateIssueStatus(c.Context(), c.Params("id"), entities.IssueStatus(body.Status))
	if err != nil {
		h.log.Errorw("failed to update issue status", "error", err.Error(), "issue_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIIssue(*issue))
}

// DeleteIssue removes an issue and echoes the removed record.
func (h *Handler) DeleteIssue(c *fiber.Ctx) error {
	issue, err := h.uc.DeleteIssue(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to delete issue", "error", err.Error(), "issue_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIIssue(*issue))
}
