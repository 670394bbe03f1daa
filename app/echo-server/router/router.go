package router

import (
	"xmasGiftAI/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupDealRoutes(api *echo.Group, handler *rest.DealHandler) {
	deals := api.Group("/deals")

	deals.GET("", handler.GetDeals)
	deals.GET("/search", handler.SearchDeals)
	deals.GET("/category/:category", handler.GetDealsByCategory)
	deals.GET("/:id", handler.GetDealByID)

	api.GET("/categories", handler.GetCategories)
}

func SetupSuggestRoutes(api *echo.Group, handler *rest.SuggestHandler) {
	suggest := api.Group("/deals/ai-suggest")

	suggest.POST("", handler.Suggest)
	suggest.POST("/explain", handler.Explain)
}
