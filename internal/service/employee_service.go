package service

import (
	"context"
	"sort"

	"tourism/internal/model"

	"github.com/shopspring/decimal"
)

// Категории рейтинга агентов по сумме рангов.
const (
	CategoryTop     = "Top Performer"
	CategoryHigh    = "High Performer"
	CategoryAverage = "Average Performer"
	CategoryLow     = "Needs Improvement"
)

var (
	weightConfirmed  = decimal.RequireFromString("0.4")
	weightHighSeason = decimal.RequireFromString("0.3")
	weightRating     = decimal.RequireFromString("0.3")
	hundred          = decimal.NewFromInt(100)
)

// EmployeeStore - источник агрегатов по сотрудникам.
type EmployeeStore interface {
	BookingActivity(ctx context.Context) ([]model.EmployeeActivity, error)
	AgentMetrics(ctx context.Context, position string) ([]model.AgentMetrics, error)
}

// EmployeeService содержит бизнес-логику отчетов по сотрудникам.
type EmployeeService struct {
	store EmployeeStore
}

// NewEmployeeService создает новый сервис сотрудников.
func NewEmployeeService(store EmployeeStore) *EmployeeService {
	return &EmployeeService{store: store}
}

// EmployeeRating - строка рейтинга эффективности сотрудника.
type EmployeeRating struct {
	EmployeeID        int     `json:"employee_id"`
	FullName          string  `json:"full_name"`
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	AvgRating         float64 `json:"avg_rating"`
	HighSeasonTours   int     `json:"high_season_tours"`
	EfficiencyScore   float64 `json:"efficiency_score"`
}

// Ratings считает efficiency_score = 0.4*подтвержденные + 0.3*туры высокого сезона + 0.3*средняя оценка.
// Сотрудники без подтвержденных бронирований не попадают в рейтинг; отсутствие отзывов дает оценку 0.
func (s *EmployeeService) Ratings(ctx context.Context) ([]EmployeeRating, error) {
	rows, err := s.store.BookingActivity(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		EmployeeRating
		score decimal.Decimal
	}
	list := make([]scored, 0, len(rows))
	for _, row := range rows {
		if row.ConfirmedBookings <= 0 {
			continue
		}
		avg := decimal.Zero
		if row.AvgRating.Valid {
			avg = decimal.NewFromFloat(row.AvgRating.Float64)
		}
		score := weightConfirmed.Mul(decimal.NewFromInt(int64(row.ConfirmedBookings))).
			Add(weightHighSeason.Mul(decimal.NewFromInt(int64(row.HighSeasonTours)))).
			Add(weightRating.Mul(avg))
		list = append(list, scored{
			EmployeeRating: EmployeeRating{
				EmployeeID:        row.EmployeeID,
				FullName:          row.FullName,
				TotalBookings:     row.TotalBookings,
				ConfirmedBookings: row.ConfirmedBookings,
				AvgRating:         rating(avg),
				HighSeasonTours:   row.HighSeasonTours,
				EfficiencyScore:   ratio(score),
			},
			score: score,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if c := list[i].score.Cmp(list[j].score); c != 0 {
			return c > 0
		}
		return list[i].EmployeeID < list[j].EmployeeID
	})

	out := make([]EmployeeRating, len(list))
	for i, item := range list {
		out[i] = item.EmployeeRating
	}
	return out, nil
}

// EmployeePerformance - строка сводного рейтинга агента.
type EmployeePerformance struct {
	EmployeeID          int     `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	TotalBookings       int     `json:"total_bookings"`
	TotalSales          float64 `json:"total_sales"`
	AvgCheck            float64 `json:"avg_check"`
	ConfirmationRate    float64 `json:"confirmation_rate"`
	AvgProcessingDays   float64 `json:"avg_processing_days"`
	SalesRank           int     `json:"sales_rank"`
	CheckRank           int     `json:"check_rank"`
	RateRank            int     `json:"rate_rank"`
	TimeRank            int     `json:"time_rank"`
	CompositeRank       int     `json:"composite_rank"`
	PerformanceCategory string  `json:"performance_category"`
}

// Performance строит сводный рейтинг агентов. Каждая из четырех метрик ранжируется независимо
// (больше продажи, больше средний чек, выше доля подтверждений, меньше время обработки визы),
// composite_rank - сумма четырех рангов, меньше - лучше.
func (s *EmployeeService) Performance(ctx context.Context) ([]EmployeePerformance, error) {
	rows, err := s.store.AgentMetrics(ctx, model.PositionAgent)
	if err != nil {
		return nil, err
	}

	agents := make([]model.AgentMetrics, 0, len(rows))
	for _, row := range rows {
		if row.TotalBookings > 0 {
			agents = append(agents, row)
		}
	}

	sales := make([]decimal.Decimal, len(agents))
	checks := make([]decimal.Decimal, len(agents))
	rates := make([]decimal.Decimal, len(agents))
	times := make([]decimal.NullDecimal, len(agents))
	for i, a := range agents {
		total := decimal.NewFromInt(int64(a.TotalBookings))
		sales[i] = a.TotalSales
		checks[i] = a.TotalSales.Div(total)
		rates[i] = hundred.Mul(decimal.NewFromInt(int64(a.ConfirmedBookings))).Div(total)
		times[i] = a.AvgProcessingDays
	}

	salesRanks := competitionRanks(sales, true)
	checkRanks := competitionRanks(checks, true)
	rateRanks := competitionRanks(rates, true)
	timeRanks := nullableRanks(times)

	out := make([]EmployeePerformance, len(agents))
	for i, a := range agents {
		composite := salesRanks[i] + checkRanks[i] + rateRanks[i] + timeRanks[i]
		out[i] = EmployeePerformance{
			EmployeeID:          a.EmployeeID,
			EmployeeName:        a.EmployeeName,
			TotalBookings:       a.TotalBookings,
			TotalSales:          money(sales[i]),
			AvgCheck:            money(checks[i]),
			ConfirmationRate:    ratio(rates[i]),
			AvgProcessingDays:   ratio(times[i].Decimal),
			SalesRank:           salesRanks[i],
			CheckRank:           checkRanks[i],
			RateRank:            rateRanks[i],
			TimeRank:            timeRanks[i],
			CompositeRank:       composite,
			PerformanceCategory: PerformanceCategory(composite),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CompositeRank != out[j].CompositeRank {
			return out[i].CompositeRank < out[j].CompositeRank
		}
		if out[i].TotalSales != out[j].TotalSales {
			return out[i].TotalSales > out[j].TotalSales
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

// PerformanceCategory возвращает категорию по сумме рангов; верхние границы включительны.
func PerformanceCategory(composite int) string {
	switch {
	case composite <= 10:
		return CategoryTop
	case composite <= 20:
		return CategoryHigh
	case composite <= 30:
		return CategoryAverage
	default:
		return CategoryLow
	}
}
