package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/internal/service/audit"
)

// DeadlineSource supplies the deadlines to audit, usually a loaded manifest.
type DeadlineSource interface {
	Resolve() []domain.Deadline
	Find(name string) (domain.Deadline, error)
}

type DeadlineHandler struct {
	auditService *audit.Service
	source       DeadlineSource
}

func NewDeadlineHandler(auditService *audit.Service, source DeadlineSource) *DeadlineHandler {
	return &DeadlineHandler{
		auditService: auditService,
		source:       source,
	}
}

type deadlineItemResponse struct {
	audit.Item
	LeadTimeSeconds  int64 `json:"lead_time_seconds"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

type deadlineReportResponse struct {
	RunID            string                 `json:"run_id"`
	EvaluatedAt      time.Time              `json:"evaluated_at"`
	ExpiredCount     int                    `json:"expired_count"`
	ApproachingCount int                    `json:"approaching_count"`
	DormantCount     int                    `json:"dormant_count"`
	Items            []deadlineItemResponse `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleList previews every deadline without recording an audit. The
// optional window query parameter filters the returned items; counts always
// cover the full manifest.
func (h *DeadlineHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.auditService.Preview(ctx, h.source.Resolve())
	if err != nil {
		slog.ErrorContext(ctx, "failed to evaluate deadlines",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to evaluate deadlines"})
		return
	}

	windowFilter := c.Query("window")

	items := make([]deadlineItemResponse, 0, len(report.Items))
	for _, item := range report.Items {
		if windowFilter != "" && item.Window.String() != windowFilter {
			continue
		}
		items = append(items, toItemResponse(item))
	}

	c.JSON(http.StatusOK, deadlineReportResponse{
		RunID:            report.RunID,
		EvaluatedAt:      report.EvaluatedAt,
		ExpiredCount:     report.ExpiredCount,
		ApproachingCount: report.ApproachingCount,
		DormantCount:     report.DormantCount,
		Items:            items,
	})
}

func (h *DeadlineHandler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	deadline, err := h.source.Find(name)
	if err != nil {
		if errors.Is(err, domain.ErrDeadlineNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	item, err := h.auditService.PreviewOne(ctx, deadline)
	if err != nil {
		slog.ErrorContext(ctx, "failed to evaluate deadline",
			slog.String("deadline", name),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to evaluate deadline"})
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func toItemResponse(item audit.Item) deadlineItemResponse {
	return deadlineItemResponse{
		Item:             item,
		LeadTimeSeconds:  int64(item.LeadTime.Seconds()),
		RemainingSeconds: int64(item.Remaining.Seconds()),
	}
}
