package service

import (
	"context"

	"tourism/internal/model"
)

// HotelStore - источник данных о загрузке отелей.
type HotelStore interface {
	Occupancy(ctx context.Context) ([]model.HotelOccupancy, error)
}

// HotelService содержит бизнес-логику, связанную с отелями.
type HotelService struct {
	store HotelStore
}

// NewHotelService создает новый сервис отелей.
func NewHotelService(store HotelStore) *HotelService {
	return &HotelService{store: store}
}

// HotelOccupancy - загрузка отеля за месяц заезда.
type HotelOccupancy struct {
	HotelID           int     `json:"hotel_id"`
	HotelName         string  `json:"hotel_name"`
	Month             string  `json:"month"`
	Season            string  `json:"season"`
	Bookings          int     `json:"bookings"`
	AvgTourDifficulty float64 `json:"avg_tour_difficulty"`
}

// Occupancy возвращает загрузку отелей по месяцам.
func (s *HotelService) Occupancy(ctx context.Context) ([]HotelOccupancy, error) {
	rows, err := s.store.Occupancy(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HotelOccupancy, len(rows))
	for i, row := range rows {
		out[i] = HotelOccupancy{
			HotelID:           row.HotelID,
			HotelName:         row.HotelName,
			Month:             row.Month,
			Season:            row.Season,
			Bookings:          row.Bookings,
			AvgTourDifficulty: ratio(row.AvgTourDifficulty),
		}
	}
	return out, nil
}
