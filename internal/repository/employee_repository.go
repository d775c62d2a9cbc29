package repository

import (
	"context"
	"fmt"

	"tourism/internal/model"

	"github.com/jmoiron/sqlx"
)

// EmployeeRepository считает показатели сотрудников по их бронированиям.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository создает новый репозиторий сотрудников.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// BookingActivity возвращает агрегаты по каждому сотруднику, оформившему хотя бы одно бронирование.
// Средняя оценка берется по всем отзывам клиентов этих бронирований, флаг is_approved не учитывается.
func (r *EmployeeRepository) BookingActivity(ctx context.Context) ([]model.EmployeeActivity, error) {
	const query = `
SELECT e.employee_id,
       e.first_name || ' ' || e.last_name AS full_name,
       COUNT(b.booking_id) AS total_bookings,
       COUNT(b.booking_id) FILTER (WHERE b.status = $1) AS confirmed_bookings,
       COUNT(DISTINCT b.tour_id) FILTER (WHERE t.season = $2) AS high_season_tours,
       (SELECT AVG(r.rating)::float8
          FROM bookings rb
          JOIN reviews r ON r.client_id = rb.client_id
         WHERE rb.employee_id = e.employee_id) AS avg_rating
FROM employees e
JOIN bookings b ON b.employee_id = e.employee_id
JOIN tours t ON t.tour_id = b.tour_id
GROUP BY e.employee_id, e.first_name, e.last_name
ORDER BY e.employee_id`
	rows := []model.EmployeeActivity{}
	if err := r.db.SelectContext(ctx, &rows, query, model.BookingConfirmed, model.SeasonHigh); err != nil {
		return nil, fmt.Errorf("ошибка при расчете активности сотрудников: %w", err)
	}
	return rows, nil
}

// AgentMetrics возвращает метрики продаж сотрудников с указанной должностью.
// Время обработки усредняется по всем парам (бронирование, виза клиента).
func (r *EmployeeRepository) AgentMetrics(ctx context.Context, position string) ([]model.AgentMetrics, error) {
	const query = `
SELECT e.employee_id,
       e.first_name || ' ' || e.last_name AS employee_name,
       COUNT(b.booking_id) AS total_bookings,
       COUNT(b.booking_id) FILTER (WHERE b.status = $2) AS confirmed_bookings,
       COALESCE(SUM(b.total_price), 0) AS total_sales,
       (SELECT AVG(EXTRACT(EPOCH FROM (pb.booking_date - v.application_date::timestamp)) / 86400)
          FROM bookings pb
          JOIN visas v ON v.client_id = pb.client_id
         WHERE pb.employee_id = e.employee_id) AS avg_processing_days
FROM employees e
JOIN bookings b ON b.employee_id = e.employee_id
WHERE e.position = $1
GROUP BY e.employee_id, e.first_name, e.last_name
HAVING COUNT(b.booking_id) > 0
ORDER BY e.employee_id`
	rows := []model.AgentMetrics{}
	if err := r.db.SelectContext(ctx, &rows, query, position, model.BookingConfirmed); err != nil {
		return nil, fmt.Errorf("ошибка при расчете метрик агентов: %w", err)
	}
	return rows, nil
}
