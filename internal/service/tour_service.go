package service

import (
	"context"
	"sort"

	"tourism/internal/model"

	"github.com/shopspring/decimal"
)

// Пороги отчетов по турам.
const (
	MinPaidExcursionPercent = 30
	MinFestivalPopularity   = 4
)

// Категории сравнения цен туров.
const (
	CategoryFestivalTours    = "Festival Tours"
	CategoryNonFestivalTours = "Non-Festival Tours"
)

// TourStore - источник агрегатов по турам.
type TourStore interface {
	ExcursionCounts(ctx context.Context) ([]model.TourExcursionCounts, error)
	FestivalExposure(ctx context.Context) ([]model.TourFestivalExposure, error)
	ThemedTours(ctx context.Context) ([]model.ThemedTourStats, error)
}

// TourService содержит бизнес-логику отчетов по турам.
type TourService struct {
	store        TourStore
	placeholders Placeholders
}

// NewTourService создает новый сервис туров.
func NewTourService(store TourStore, locale string) *TourService {
	return &TourService{store: store, placeholders: PlaceholdersFor(locale)}
}

// PaidExcursionStats - доля платных экскурсий тура.
type PaidExcursionStats struct {
	TourID          int     `json:"tour_id"`
	Name            string  `json:"name"`
	TotalExcursions int     `json:"total_excursions"`
	PaidExcursions  int     `json:"paid_excursions"`
	PaidPercent     float64 `json:"paid_percent"`
}

// PaidExcursions возвращает туры, где больше 30% экскурсий не входит в стоимость,
// по убыванию этой доли. Туры без платных экскурсий отбрасываются до деления.
func (s *TourService) PaidExcursions(ctx context.Context) ([]PaidExcursionStats, error) {
	rows, err := s.store.ExcursionCounts(ctx)
	if err != nil {
		return nil, err
	}

	threshold := decimal.NewFromInt(MinPaidExcursionPercent)
	type item struct {
		PaidExcursionStats
		percent decimal.Decimal
	}
	list := make([]item, 0, len(rows))
	for _, row := range rows {
		if row.PaidExcursions <= 0 || row.TotalExcursions <= 0 {
			continue
		}
		percent := hundred.Mul(decimal.NewFromInt(int64(row.PaidExcursions))).
			Div(decimal.NewFromInt(int64(row.TotalExcursions))).
			Round(2)
		if !percent.GreaterThan(threshold) {
			continue
		}
		list = append(list, item{
			PaidExcursionStats: PaidExcursionStats{
				TourID:          row.TourID,
				Name:            row.Name,
				TotalExcursions: row.TotalExcursions,
				PaidExcursions:  row.PaidExcursions,
				PaidPercent:     ratio(percent),
			},
			percent: percent,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if c := list[i].percent.Cmp(list[j].percent); c != 0 {
			return c > 0
		}
		return list[i].TourID < list[j].TourID
	})

	out := make([]PaidExcursionStats, len(list))
	for i, it := range list {
		out[i] = it.PaidExcursionStats
	}
	return out, nil
}

// TourPriceComparison - число туров категории и их средняя цена.
type TourPriceComparison struct {
	Category  string  `json:"category"`
	TourCount int     `json:"tour_count"`
	AvgPrice  float64 `json:"avg_price"`
}

// FestivalPriceComparison сравнивает туры с популярными фестивалями (средняя популярность
// связанных фестивалей не ниже 4) и туры без фестивалей. Туры только с непопулярными
// фестивалями не входят ни в одну категорию. Всегда возвращает ровно две строки.
func (s *TourService) FestivalPriceComparison(ctx context.Context) ([]TourPriceComparison, error) {
	rows, err := s.store.FestivalExposure(ctx)
	if err != nil {
		return nil, err
	}

	var festival, plain []decimal.Decimal
	for _, row := range rows {
		switch {
		case row.FestivalLinks == 0:
			plain = append(plain, row.Price)
		case row.AvgPopularity.Valid && row.AvgPopularity.Float64 >= MinFestivalPopularity:
			festival = append(festival, row.Price)
		}
	}

	return []TourPriceComparison{
		{Category: CategoryFestivalTours, TourCount: len(festival), AvgPrice: money(average(festival))},
		{Category: CategoryNonFestivalTours, TourCount: len(plain), AvgPrice: money(average(plain))},
	}, nil
}

// ThemeStats - сводка по тематике туров.
type ThemeStats struct {
	Theme           string  `json:"theme"`
	TourCount       int     `json:"tour_count"`
	AvgPrice        float64 `json:"avg_price"`
	AvgDifficulty   float64 `json:"avg_difficulty"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	TotalRevenue    float64 `json:"total_revenue"`
	BookingsCount   int     `json:"bookings_count"`
	AvgRating       Value   `json:"avg_rating"`
	MostPopularTour string  `json:"most_popular_tour"`
}

// ThemeAnalysis группирует туры с тематикой. Выручка и бронирования - без отмененных.
// Самый популярный тур - с наибольшим числом бронирований, при равенстве - с меньшим ID.
// Результат упорядочен по убыванию числа бронирований.
func (s *TourService) ThemeAnalysis(ctx context.Context) ([]ThemeStats, error) {
	rows, err := s.store.ThemedTours(ctx)
	if err != nil {
		return nil, err
	}

	type group struct {
		theme       string
		prices      []decimal.Decimal
		difficulty  int64
		revenue     decimal.Decimal
		bookings    int
		ratingSum   int64
		ratingCount int64
		top         *model.ThemedTourStats
	}
	var order []string
	groups := make(map[string]*group)
	for i := range rows {
		row := &rows[i]
		g, ok := groups[row.Theme]
		if !ok {
			g = &group{theme: row.Theme}
			groups[row.Theme] = g
			order = append(order, row.Theme)
		}
		g.prices = append(g.prices, row.Price)
		g.difficulty += int64(row.Difficulty)
		g.revenue = g.revenue.Add(row.Revenue)
		g.bookings += row.BookingsCount
		g.ratingSum += int64(row.RatingSum)
		g.ratingCount += int64(row.RatingCount)
		if g.top == nil || row.BookingsCount > g.top.BookingsCount ||
			(row.BookingsCount == g.top.BookingsCount && row.TourID < g.top.TourID) {
			g.top = row
		}
	}

	out := make([]ThemeStats, 0, len(order))
	for _, theme := range order {
		g := groups[theme]
		count := decimal.NewFromInt(int64(len(g.prices)))
		stats := ThemeStats{
			Theme:           g.theme,
			TourCount:       len(g.prices),
			AvgPrice:        money(average(g.prices)),
			AvgDifficulty:   ratio(decimal.NewFromInt(g.difficulty).Div(count)),
			MinPrice:        money(decimal.Min(g.prices[0], g.prices[1:]...)),
			MaxPrice:        money(decimal.Max(g.prices[0], g.prices[1:]...)),
			TotalRevenue:    money(g.revenue),
			BookingsCount:   g.bookings,
			AvgRating:       Text(s.placeholders.NoReviews),
			MostPopularTour: g.top.Name,
		}
		if g.ratingCount > 0 {
			stats.AvgRating = Number(rating(decimal.NewFromInt(g.ratingSum).Div(decimal.NewFromInt(g.ratingCount))))
		}
		out = append(out, stats)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BookingsCount != out[j].BookingsCount {
			return out[i].BookingsCount > out[j].BookingsCount
		}
		return out[i].Theme < out[j].Theme
	})
	return out, nil
}

// average возвращает среднее значение или 0 для пустого набора.
func average(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(values[0], values[1:]...).Div(decimal.NewFromInt(int64(len(values))))
}
