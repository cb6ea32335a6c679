package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api/metrics"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/service"
)

type SubmissionHandler struct {
	submissions ports.SubmissionService
	dashboard   *service.DashboardService
	status      ports.NotificationStatusStore
	logger      zerolog.Logger
}

func NewSubmissionHandler(
	submissions ports.SubmissionService,
	dashboard *service.DashboardService,
	status ports.NotificationStatusStore,
	logger zerolog.Logger,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		dashboard:   dashboard,
		status:      status,
		logger:      logger,
	}
}

type submitRequest struct {
	StudentName string `json:"student_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Date        string `json:"date" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	LeaveTime   string `json:"leave_time" validate:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Submit creates a new pending leave request.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.submissions.Submit(c.Request().Context(), viewer, ports.SubmitInput{
		StudentName: req.StudentName,
		Email:       req.Email,
		Date:        req.Date,
		Reason:      req.Reason,
		LeaveTime:   req.LeaveTime,
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsCreatedTotal.WithLabelValues(sub.LeaveTime).Inc()
	return c.JSON(http.StatusCreated, sub)
}

// List returns the viewer's filtered submission view. Query parameters:
// status (all|Pending|Rejected) and filter (total|today|weekly|fullDay|weeklyHours).
func (h *SubmissionHandler) List(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	status := ports.StatusFilter(c.QueryParam("status"))
	if status == "" {
		status = ports.FilterAll
	}
	sub := ports.SubFilter(c.QueryParam("filter"))
	if sub == "" {
		sub = ports.SubFilterTotal
	}

	visible := h.dashboard.Visible(viewer.Email, status, sub)
	return c.JSON(http.StatusOK, visible)
}

// Timeline returns the approved view grouped by date, newest day first.
func (h *SubmissionHandler) Timeline(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboard.Timeline(viewer.Email))
}

// Approve transitions a pending request to Approved. The operation is
// best-effort from the caller's perspective: guard rejections and terminal
// no-ops look identical to success, and store failures are logged rather than
// surfaced, so the UI never blocks on a moderation action.
func (h *SubmissionHandler) Approve(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	applied, err := h.submissions.Approve(c.Request().Context(), viewer, id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("approve failed")
	}
	if applied {
		metrics.TransitionsTotal.WithLabelValues(string(domain.StatusApproved)).Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Reject transitions a pending request to Rejected with a mandatory reason.
// Same best-effort posture as Approve.
func (h *SubmissionHandler) Reject(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	applied, err := h.submissions.Reject(c.Request().Context(), viewer, id, req.Reason)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("reject failed")
	}
	if applied {
		metrics.TransitionsTotal.WithLabelValues(string(domain.StatusRejected)).Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete hard-removes a submission record in any state.
func (h *SubmissionHandler) Delete(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	if err := h.submissions.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	metrics.SubmissionsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats returns the recomputed dashboard summary for the viewer's scope.
func (h *SubmissionHandler) Stats(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboard.Stats(viewer.Email))
}

// WeeklyHours returns the per-user approved leave hours over the last week.
func (h *SubmissionHandler) WeeklyHours(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboard.WeeklyHours(viewer.Email))
}

// NotificationStatus returns the last webhook delivery outcome for the
// viewer's own submissions.
func (h *SubmissionHandler) NotificationStatus(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	status, err := h.status.Get(c.Request().Context(), viewer.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}
