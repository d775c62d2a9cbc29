package repository

import (
	"context"
	"fmt"

	"tourism/internal/model"

	"github.com/jmoiron/sqlx"
)

// TourRepository обеспечивает доступ к турам и их связям (экскурсии, фестивали, бронирования).
type TourRepository struct {
	db *sqlx.DB
}

// NewTourRepository создает новый репозиторий туров.
func NewTourRepository(db *sqlx.DB) *TourRepository {
	return &TourRepository{db: db}
}

// ExcursionCounts возвращает для каждого тура число экскурсий и число платных (не входящих в цену).
// Туры без экскурсий присутствуют с нулевыми счетчиками.
func (r *TourRepository) ExcursionCounts(ctx context.Context) ([]model.TourExcursionCounts, error) {
	const query = `
SELECT t.tour_id, t.name,
       COUNT(te.tour_excursion_id) AS total_excursions,
       COUNT(te.tour_excursion_id) FILTER (WHERE NOT te.included_in_price) AS paid_excursions
FROM tours t
LEFT JOIN tour_excursions te ON te.tour_id = t.tour_id
GROUP BY t.tour_id, t.name
ORDER BY t.tour_id`
	counts := []model.TourExcursionCounts{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете экскурсий туров: %w", err)
	}
	return counts, nil
}

// FestivalExposure возвращает цену тура, число связанных фестивалей и их среднюю популярность.
func (r *TourRepository) FestivalExposure(ctx context.Context) ([]model.TourFestivalExposure, error) {
	const query = `
SELECT t.tour_id, t.price,
       COUNT(tf.festival_id) AS festival_links,
       AVG(f.popularity)::float8 AS avg_popularity
FROM tours t
LEFT JOIN tour_festivals tf ON tf.tour_id = t.tour_id
LEFT JOIN festivals f ON f.festival_id = tf.festival_id
GROUP BY t.tour_id, t.price
ORDER BY t.tour_id`
	tours := []model.TourFestivalExposure{}
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении фестивалей туров: %w", err)
	}
	return tours, nil
}

// ThemedTours возвращает показатели туров с заданной тематикой.
// Выручка и число бронирований считаются без отмененных бронирований.
func (r *TourRepository) ThemedTours(ctx context.Context) ([]model.ThemedTourStats, error) {
	const query = `
SELECT t.theme, t.tour_id, t.name, t.price, t.difficulty_level,
       COALESCE(bs.revenue, 0)        AS revenue,
       COALESCE(bs.bookings_count, 0) AS bookings_count,
       COALESCE(rs.rating_sum, 0)     AS rating_sum,
       COALESCE(rs.rating_count, 0)   AS rating_count
FROM tours t
LEFT JOIN (
    SELECT tour_id, SUM(total_price) AS revenue, COUNT(DISTINCT booking_id) AS bookings_count
    FROM bookings
    WHERE status <> $1
    GROUP BY tour_id
) bs ON bs.tour_id = t.tour_id
LEFT JOIN (
    SELECT tour_id, SUM(rating) AS rating_sum, COUNT(*) AS rating_count
    FROM reviews
    GROUP BY tour_id
) rs ON rs.tour_id = t.tour_id
WHERE t.theme IS NOT NULL
ORDER BY t.theme, t.tour_id`
	tours := []model.ThemedTourStats{}
	if err := r.db.SelectContext(ctx, &tours, query, model.BookingCancelled); err != nil {
		return nil, fmt.Errorf("ошибка при получении тематических туров: %w", err)
	}
	return tours, nil
}
