package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// SeasonHigh - высокий сезон тура.
const SeasonHigh = "High"

// TourExcursionCounts - число экскурсий тура, всего и не входящих в стоимость.
type TourExcursionCounts struct {
	TourID          int    `db:"tour_id"`
	Name            string `db:"name"`
	TotalExcursions int    `db:"total_excursions"`
	PaidExcursions  int    `db:"paid_excursions"`
}

// TourFestivalExposure описывает связь тура с фестивалями.
type TourFestivalExposure struct {
	TourID        int             `db:"tour_id"`
	Price         decimal.Decimal `db:"price"`
	FestivalLinks int             `db:"festival_links"`
	AvgPopularity sql.NullFloat64 `db:"avg_popularity"` // NULL, если фестивалей нет
}

// ThemedTourStats - показатели одного тематического тура.
// Выручка и число бронирований учитывают только неотмененные бронирования.
type ThemedTourStats struct {
	Theme         string          `db:"theme"`
	TourID        int             `db:"tour_id"`
	Name          string          `db:"name"`
	Price         decimal.Decimal `db:"price"`
	Difficulty    int             `db:"difficulty_level"`
	Revenue       decimal.Decimal `db:"revenue"`
	BookingsCount int             `db:"bookings_count"`
	RatingSum     int             `db:"rating_sum"`
	RatingCount   int             `db:"rating_count"`
}

// HotelOccupancy - строка представления hotel_occupancy.
type HotelOccupancy struct {
	HotelID           int             `db:"hotel_id"`
	HotelName         string          `db:"hotel_name"`
	Month             string          `db:"month"`
	Season            string          `db:"season"`
	Bookings          int             `db:"bookings"`
	AvgTourDifficulty decimal.Decimal `db:"avg_tour_difficulty"`
}
