package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/model"
)

func TestTourService_PaidExcursions(t *testing.T) {
	store := &fakeTourStore{excursions: []model.TourExcursionCounts{
		{TourID: 1, Name: "Half", TotalExcursions: 4, PaidExcursions: 2},
		{TourID: 2, Name: "Exactly30", TotalExcursions: 10, PaidExcursions: 3},
		{TourID: 3, Name: "AllPaid", TotalExcursions: 3, PaidExcursions: 3},
		{TourID: 4, Name: "None", TotalExcursions: 0, PaidExcursions: 0},
		{TourID: 5, Name: "Included", TotalExcursions: 5, PaidExcursions: 0},
		{TourID: 6, Name: "Third", TotalExcursions: 3, PaidExcursions: 1},
	}}

	rows, err := NewTourService(store, "ru").PaidExcursions(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 3, rows[0].TourID)
	assert.Equal(t, 100.0, rows[0].PaidPercent)
	assert.Equal(t, 1, rows[1].TourID)
	assert.Equal(t, 50.0, rows[1].PaidPercent)
	assert.Equal(t, 6, rows[2].TourID)
	assert.Equal(t, 33.33, rows[2].PaidPercent)
}

func TestTourService_FestivalPriceComparison(t *testing.T) {
	popularity := func(f float64) sql.NullFloat64 { return sql.NullFloat64{Float64: f, Valid: true} }
	store := &fakeTourStore{festivals: []model.TourFestivalExposure{
		{TourID: 1, Price: decimal.NewFromInt(1000), FestivalLinks: 2, AvgPopularity: popularity(4.5)},
		{TourID: 2, Price: decimal.NewFromInt(2001), FestivalLinks: 1, AvgPopularity: popularity(4)},
		{TourID: 3, Price: decimal.NewFromInt(500), FestivalLinks: 0},
		{TourID: 4, Price: decimal.NewFromInt(9999), FestivalLinks: 3, AvgPopularity: popularity(2.5)},
	}}

	rows, err := NewTourService(store, "ru").FestivalPriceComparison(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, CategoryFestivalTours, rows[0].Category)
	assert.Equal(t, 2, rows[0].TourCount)
	assert.Equal(t, 1500.5, rows[0].AvgPrice)

	assert.Equal(t, CategoryNonFestivalTours, rows[1].Category)
	assert.Equal(t, 1, rows[1].TourCount)
	assert.Equal(t, 500.0, rows[1].AvgPrice)

	assert.LessOrEqual(t, rows[0].TourCount+rows[1].TourCount, len(store.festivals))
}

func TestTourService_FestivalPriceComparisonEmpty(t *testing.T) {
	rows, err := NewTourService(&fakeTourStore{}, "ru").FestivalPriceComparison(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Zero(t, rows[0].TourCount)
	assert.Zero(t, rows[0].AvgPrice)
	assert.Zero(t, rows[1].TourCount)
}

func TestTourService_ThemeAnalysis(t *testing.T) {
	price := decimal.NewFromInt
	store := &fakeTourStore{themed: []model.ThemedTourStats{
		{Theme: "Nature", TourID: 5, Name: "Lakes", Price: price(1000), Difficulty: 2, Revenue: price(2000), BookingsCount: 2, RatingSum: 9, RatingCount: 2},
		{Theme: "Culture", TourID: 2, Name: "Museums", Price: price(800), Difficulty: 1, Revenue: price(800), BookingsCount: 1},
		{Theme: "Nature", TourID: 3, Name: "Forest", Price: price(3000), Difficulty: 5, Revenue: price(6000), BookingsCount: 2, RatingSum: 4, RatingCount: 1},
		{Theme: "Culture", TourID: 4, Name: "Theatres", Price: price(1200), Difficulty: 2},
	}}

	rows, err := NewTourService(store, "en").ThemeAnalysis(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	nature := rows[0]
	assert.Equal(t, "Nature", nature.Theme)
	assert.Equal(t, 2, nature.TourCount)
	assert.Equal(t, 2000.0, nature.AvgPrice)
	assert.Equal(t, 3.5, nature.AvgDifficulty)
	assert.Equal(t, 1000.0, nature.MinPrice)
	assert.Equal(t, 3000.0, nature.MaxPrice)
	assert.Equal(t, 8000.0, nature.TotalRevenue)
	assert.Equal(t, 4, nature.BookingsCount)
	assert.Equal(t, 4.3, nature.AvgRating.Float())
	assert.Equal(t, "Forest", nature.MostPopularTour, "ties go to the lower tour id")

	culture := rows[1]
	assert.Equal(t, "Culture", culture.Theme)
	assert.Equal(t, 1, culture.BookingsCount)
	assert.Equal(t, "No reviews", culture.AvgRating.String())
	assert.Equal(t, "Museums", culture.MostPopularTour)
}

func TestTourService_Errors(t *testing.T) {
	svc := NewTourService(&fakeTourStore{err: assert.AnError}, "ru")
	ctx := context.Background()

	_, err := svc.PaidExcursions(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	_, err = svc.FestivalPriceComparison(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	_, err = svc.ThemeAnalysis(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
