package handler

import "github.com/gin-gonic/gin"

// SetupRoutes регистрирует маршруты отчетов и health-check.
func SetupRoutes(router *gin.Engine, h *Handler, allowedOrigins []string) {
	router.Use(RequestIDMiddleware(), CORSMiddleware(allowedOrigins))

	reports := router.Group("/api/reports")
	{
		reports.GET("/clients/friends", h.Friends)
		reports.GET("/clients/activity", h.Activity)
		reports.GET("/tours/paid-excursions", h.PaidExcursions)
		reports.GET("/tours/themes", h.Themes)
		reports.GET("/employees/ratings", h.EmployeeRatings)
		reports.GET("/employees/performance", h.Performance)
		reports.GET("/festivals/price-comparison", h.FestivalPrices)
		reports.GET("/payments/monthly", h.MonthlyPayments)
		reports.GET("/hotels/occupancy", h.Occupancy)
	}
	router.GET("/health", h.Health)
}
