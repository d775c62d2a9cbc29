package repository

import (
	"context"
	"fmt"

	"tourism/internal/model"

	"github.com/jmoiron/sqlx"
)

// ClientRepository обеспечивает доступ к данным клиентов в базе данных.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository создаёт новый репозиторий клиентов.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindCoTravellers возвращает клиентов, которые бронировали хотя бы один тур из бронирований
// указанного клиента. Сам клиент в результат не попадает.
func (r *ClientRepository) FindCoTravellers(ctx context.Context, clientID int) ([]model.ClientContact, error) {
	const query = `
SELECT DISTINCT c.client_id, c.first_name, c.last_name, c.email, c.phone
FROM clients c
JOIN bookings b ON b.client_id = c.client_id
WHERE b.tour_id IN (SELECT tour_id FROM bookings WHERE client_id = $1)
  AND c.client_id <> $1
ORDER BY c.client_id`
	clients := []model.ClientContact{}
	if err := r.db.SelectContext(ctx, &clients, query, clientID); err != nil {
		return nil, fmt.Errorf("ошибка при поиске попутчиков клиента %d: %w", clientID, err)
	}
	return clients, nil
}

// RecentActivity возвращает клиентов с последними бронированиями, начиная с самых свежих.
// Последний отзыв выбирается по дате отзыва независимо от бронирования.
func (r *ClientRepository) RecentActivity(ctx context.Context, limit int) ([]model.ClientActivity, error) {
	const query = `
SELECT c.client_id, c.first_name, c.last_name,
       lb.booking_date AS last_booking_date,
       lb.tour_name    AS last_tour_name,
       lr.rating       AS last_rating,
       lr.comment      AS last_comment
FROM clients c
JOIN LATERAL (
    SELECT b.booking_date, t.name AS tour_name
    FROM bookings b
    JOIN tours t ON t.tour_id = b.tour_id
    WHERE b.client_id = c.client_id
    ORDER BY b.booking_date DESC, b.booking_id DESC
    LIMIT 1
) lb ON TRUE
LEFT JOIN LATERAL (
    SELECT r.rating, r.comment
    FROM reviews r
    WHERE r.client_id = c.client_id
    ORDER BY r.review_date DESC, r.review_id DESC
    LIMIT 1
) lr ON TRUE
ORDER BY lb.booking_date DESC, c.client_id
LIMIT $1`
	activity := []model.ClientActivity{}
	if err := r.db.SelectContext(ctx, &activity, query, limit); err != nil {
		return nil, fmt.Errorf("ошибка при получении активности клиентов: %w", err)
	}
	return activity, nil
}
