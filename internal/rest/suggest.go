package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"xmasGiftAI/business/suggest"
	"xmasGiftAI/domain"
	"xmasGiftAI/pkg/logger"
	"xmasGiftAI/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SuggestHandler struct {
		validate       *validator.Validate
		suggestService SuggestService
		timeout        time.Duration
	}

	SuggestService interface {
		Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResponse, error)
		Explain(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionExplanation, error)
	}

	SuggestRequest struct {
		RecipientDescription string  `json:"recipient_description" validate:"required,min=5,max=500"`
		BudgetMin            float64 `json:"budget_min" validate:"gte=0,lte=5000"`
		BudgetMax            float64 `json:"budget_max" validate:"gte=0,lte=10000"`
		MaxResults           int     `json:"max_results" validate:"gte=1,lte=25"`
	}
)

func NewSuggestHandler(svc SuggestService, timeout time.Duration) *SuggestHandler {
	return &SuggestHandler{
		validate:       validator.New(),
		suggestService: svc,
		timeout:        timeout,
	}
}

func (h *SuggestHandler) bindRequest(c echo.Context) (domain.SuggestionRequest, error) {
	req := SuggestRequest{BudgetMin: 0, BudgetMax: 1000, MaxResults: 5}
	if err := c.Bind(&req); err != nil {
		return domain.SuggestionRequest{}, err
	}
	if err := h.validate.Struct(&req); err != nil {
		return domain.SuggestionRequest{}, err
	}

	return domain.SuggestionRequest{
		RecipientDescription: req.RecipientDescription,
		BudgetMin:            req.BudgetMin,
		BudgetMax:            req.BudgetMax,
		MaxResults:           req.MaxResults,
	}, nil
}

// POST /api/v1/deals/ai-suggest
func (h *SuggestHandler) Suggest(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.SuggestLatency.Observe(time.Since(start).Seconds())
	}()

	req, err := h.bindRequest(c)
	if err != nil {
		metrics.SuggestRequests.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()
	ctx = suggest.WithRequestID(ctx, c.Response().Header().Get(echo.HeaderXRequestID))

	resp, err := h.suggestService.Suggest(ctx, req)
	if err != nil {
		if errors.Is(err, suggest.ErrInvalidRequest) {
			metrics.SuggestRequests.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		metrics.SuggestRequests.WithLabelValues("error").Inc()
		logger.Error("Failed to suggest deals", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.SuggestRequests.WithLabelValues("ok").Inc()
	metrics.SuggestResults.Observe(float64(len(resp.SuggestedDeals)))

	return c.JSON(http.StatusOK, resp)
}

// POST /api/v1/deals/ai-suggest/explain
func (h *SuggestHandler) Explain(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()
	ctx = suggest.WithRequestID(ctx, c.Response().Header().Get(echo.HeaderXRequestID))

	explanation, err := h.suggestService.Explain(ctx, req)
	if err != nil {
		if errors.Is(err, suggest.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to explain suggestion", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(explanation))
}
