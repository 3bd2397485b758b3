package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/odenirdev/feedpulse/internal/domain"
	apperrors "github.com/odenirdev/feedpulse/internal/platform/errors"
)

type analyzeRequest struct {
	Messages          []domain.Message `json:"messages"`
	TimeWindowMinutes *float64         `json:"time_window_minutes"`
}

type analyzeResponse struct {
	Message string         `json:"message,omitempty"`
	Data    *domain.Report `json:"data"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperrors.InternalError("failed to read request body", err)
	}
	if len(body) == 0 {
		return apperrors.ValidationError("Missing request body")
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError("Invalid JSON body")
	}

	if req.Messages == nil || req.TimeWindowMinutes == nil {
		return apperrors.ValidationError("Invalid request payload")
	}

	if len(req.Messages) > s.config.MaxBatchSize {
		return apperrors.ValidationError("Batch exceeds maximum size").
			WithField("max_batch_size", s.config.MaxBatchSize)
	}

	if msg := validateMessages(req.Messages); msg != "" {
		return apperrors.ValidationError(msg)
	}

	report, err := s.app.Analyze(c.Request().Context(), req.Messages, *req.TimeWindowMinutes)
	if err != nil {
		return mapAnalysisError(err)
	}

	if err := c.JSON(http.StatusOK, analyzeResponse{Data: report}); err != nil {
		return fmt.Errorf("failed to write analyze response: %w", err)
	}
	return nil
}

func mapAnalysisError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSimulatedFailure):
		return apperrors.BusinessRuleError("Business rule violation").
			WithField("code", "UNSUPPORTED_TIME_WINDOW")
	case errors.Is(err, domain.ErrInvalidTimeWindow):
		return apperrors.ValidationError(err.Error())
	default:
		return apperrors.InternalError("analysis failed", err)
	}
}
