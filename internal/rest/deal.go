package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"xmasGiftAI/business/catalog"
	"xmasGiftAI/domain"
	"xmasGiftAI/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type DealService interface {
	GetDeals(ctx context.Context, skip, limit int) ([]domain.Deal, error)
	GetDealByID(ctx context.Context, id uint64) (domain.Deal, error)
	GetDealsByCategory(ctx context.Context, category string) ([]domain.Deal, error)
	SearchDeals(ctx context.Context, query string) ([]domain.Deal, error)
	GetCategories(ctx context.Context) ([]domain.CategorySummary, error)
}

type DealHandler struct {
	dealService DealService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewDealHandler(dealService DealService, timeout time.Duration) *DealHandler {
	return &DealHandler{
		dealService: dealService,
		validator:   validator.New(),
		timeout:     timeout,
	}
}

type DealsQuery struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=1,lte=100"`
}

type SearchQuery struct {
	Q string `query:"q" validate:"required"`
}

type SearchResponse struct {
	Query        string        `json:"query"`
	TotalResults int           `json:"total_results"`
	Deals        []domain.Deal `json:"deals"`
}

func (h *DealHandler) GetDeals(c echo.Context) error {
	q := DealsQuery{Limit: catalog.DefaultPageSize}
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind deals query", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid pagination parameters"})
	}

	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deals, err := h.dealService.GetDeals(ctx, q.Skip, q.Limit)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPagination) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get deals", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get deals",
		"deals":   deals,
	})
}

func (h *DealHandler) GetDealByID(c echo.Context) error {
	dealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid deal id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deal, err := h.dealService.GetDealByID(ctx, dealID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, catalog.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find deal by id",
		"deal":    deal,
	})
}

func (h *DealHandler) GetDealsByCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deals, err := h.dealService.GetDealsByCategory(ctx, c.Param("category"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidCategory):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, catalog.ErrNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get deals by category", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get deals by category",
		"deals":   deals,
	})
}

func (h *DealHandler) SearchDeals(c echo.Context) error {
	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "search query is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deals, err := h.dealService.SearchDeals(ctx, q.Q)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyQuery) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to search deals", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Query:        q.Q,
		TotalResults: len(deals),
		Deals:        deals,
	})
}

func (h *DealHandler) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	categories, err := h.dealService.GetCategories(ctx)
	if err != nil {
		logger.Error("Failed to get categories", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}
