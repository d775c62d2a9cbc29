package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"tourism/internal/service"

	"github.com/gin-gonic/gin"
)

const maxActivityLimit = 100

// Pinger проверяет доступность хранилища; *sqlx.DB ему удовлетворяет.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options задает параметры отчетов по умолчанию.
type Options struct {
	DistinguishedClientID int
	ActivityLimit         int
	QueryTimeout          time.Duration
}

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	ClientService   *service.ClientService
	TourService     *service.TourService
	EmployeeService *service.EmployeeService
	PaymentService  *service.PaymentService
	HotelService    *service.HotelService

	db     Pinger
	logger *log.Logger
	opts   Options
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(cs *service.ClientService, ts *service.TourService, es *service.EmployeeService,
	ps *service.PaymentService, hs *service.HotelService, db Pinger, logger *log.Logger, opts Options) *Handler {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = 5
	}
	return &Handler{
		ClientService:   cs,
		TourService:     ts,
		EmployeeService: es,
		PaymentService:  ps,
		HotelService:    hs,
		db:              db,
		logger:          logger,
		opts:            opts,
	}
}

// respond отдает результат отчета или 500 с логом ошибки.
func respond[T any](h *Handler, c *gin.Context, report string, rows []T, err error) {
	if err != nil {
		h.logger.Printf("[%s] Ошибка построения отчета %s: %v", RequestID(c), report, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось построить отчет"})
		return
	}
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.opts.QueryTimeout)
}

// positiveQuery читает целый положительный параметр запроса или возвращает def, если он не задан.
func positiveQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Friends обработчик для GET /api/reports/clients/friends - попутчики клиента.
func (h *Handler) Friends(c *gin.Context) {
	clientID, ok := positiveQuery(c, "client_id", h.opts.DistinguishedClientID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id должен быть положительным целым числом"})
		return
	}
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.ClientService.Friends(ctx, clientID)
	respond(h, c, "friends", rows, err)
}

// PaidExcursions обработчик для GET /api/reports/tours/paid-excursions.
func (h *Handler) PaidExcursions(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.TourService.PaidExcursions(ctx)
	respond(h, c, "paid-excursions", rows, err)
}

// EmployeeRatings обработчик для GET /api/reports/employees/ratings.
func (h *Handler) EmployeeRatings(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.EmployeeService.Ratings(ctx)
	respond(h, c, "employee-ratings", rows, err)
}

// FestivalPrices обработчик для GET /api/reports/festivals/price-comparison.
func (h *Handler) FestivalPrices(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.TourService.FestivalPriceComparison(ctx)
	respond(h, c, "festival-prices", rows, err)
}

// MonthlyPayments обработчик для GET /api/reports/payments/monthly.
func (h *Handler) MonthlyPayments(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.PaymentService.MonthlyStats(ctx)
	respond(h, c, "monthly-payments", rows, err)
}

// Performance обработчик для GET /api/reports/employees/performance.
func (h *Handler) Performance(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.EmployeeService.Performance(ctx)
	respond(h, c, "performance", rows, err)
}

// Activity обработчик для GET /api/reports/clients/activity.
func (h *Handler) Activity(c *gin.Context) {
	limit, ok := positiveQuery(c, "limit", h.opts.ActivityLimit)
	if !ok || limit > maxActivityLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit должен быть от 1 до 100"})
		return
	}
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.ClientService.Activity(ctx, limit)
	respond(h, c, "activity", rows, err)
}

// Themes обработчик для GET /api/reports/tours/themes.
func (h *Handler) Themes(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.TourService.ThemeAnalysis(ctx)
	respond(h, c, "themes", rows, err)
}

// Occupancy обработчик для GET /api/reports/hotels/occupancy.
func (h *Handler) Occupancy(c *gin.Context) {
	ctx, cancel := h.queryContext(c)
	defer cancel()
	rows, err := h.HotelService.Occupancy(ctx)
	respond(h, c, "occupancy", rows, err)
}

// Health проверяет соединение с базой.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Printf("[%s] База недоступна: %v", RequestID(c), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
