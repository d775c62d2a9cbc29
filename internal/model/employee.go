package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// PositionAgent - должность сотрудника, участвующего в рейтинге продаж.
const PositionAgent = "Agent"

// EmployeeActivity - агрегаты по бронированиям, которые оформил сотрудник.
type EmployeeActivity struct {
	EmployeeID        int             `db:"employee_id"`
	FullName          string          `db:"full_name"`
	TotalBookings     int             `db:"total_bookings"`
	ConfirmedBookings int             `db:"confirmed_bookings"`
	HighSeasonTours   int             `db:"high_season_tours"` // различные туры высокого сезона
	AvgRating         sql.NullFloat64 `db:"avg_rating"`        // NULL, если у клиентов сотрудника нет отзывов
}

// AgentMetrics - исходные метрики агента для рейтинга эффективности.
type AgentMetrics struct {
	EmployeeID        int                 `db:"employee_id"`
	EmployeeName      string              `db:"employee_name"`
	TotalBookings     int                 `db:"total_bookings"`
	ConfirmedBookings int                 `db:"confirmed_bookings"`
	TotalSales        decimal.Decimal     `db:"total_sales"`
	AvgProcessingDays decimal.NullDecimal `db:"avg_processing_days"` // бронирование минус дата подачи визы, в днях
}
