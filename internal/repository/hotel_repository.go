package repository

import (
	"context"
	"fmt"

	"tourism/internal/model"

	"github.com/jmoiron/sqlx"
)

// HotelRepository обеспечивает доступ к данным о загрузке отелей.
type HotelRepository struct {
	db *sqlx.DB
}

// NewHotelRepository создает новый репозиторий отелей.
func NewHotelRepository(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Occupancy читает представление hotel_occupancy.
func (r *HotelRepository) Occupancy(ctx context.Context) ([]model.HotelOccupancy, error) {
	const query = `
SELECT hotel_id, hotel_name, month, season, bookings, avg_tour_difficulty
FROM hotel_occupancy
ORDER BY month, hotel_id, season`
	rows := []model.HotelOccupancy{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении загрузки отелей: %w", err)
	}
	return rows, nil
}
