package notify

import (
	"fmt"
	"strconv"
	"strings"

	"tourism/internal/model"
	"tourism/internal/service"
)

const emptyReport = "Нет данных."

// formatNumber печатает число без лишних нулей: 1500, 33.33, 4.5.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func join(title string, lines []string) string {
	if len(lines) == 0 {
		return title + "\n" + emptyReport
	}
	return title + "\n" + strings.Join(lines, "\n")
}

// Friends выводит клиентов, путешествовавших вместе с клиентом clientID.
func Friends(clientID int, rows []model.ClientContact) string {
	lines := make([]string, 0, len(rows))
	for _, c := range rows {
		lines = append(lines, fmt.Sprintf("#%d %s %s, %s, %s", c.ID, c.FirstName, c.LastName, c.Email, c.Phone))
	}
	return join(fmt.Sprintf("Попутчики клиента #%d:", clientID), lines)
}

// PaidExcursions выводит туры с большой долей платных экскурсий.
func PaidExcursions(rows []service.PaidExcursionStats) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %d из %d платные (%s%%)",
			r.Name, r.PaidExcursions, r.TotalExcursions, formatNumber(r.PaidPercent)))
	}
	return join("Туры с платными экскурсиями:", lines)
}

// EmployeeRatings выводит рейтинг эффективности сотрудников.
func EmployeeRatings(rows []service.EmployeeRating) string {
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		lines = append(lines, fmt.Sprintf("%d. %s: %s (подтверждено %d из %d, высокий сезон %d, оценка %s)",
			i+1, r.FullName, formatNumber(r.EfficiencyScore), r.ConfirmedBookings, r.TotalBookings,
			r.HighSeasonTours, formatNumber(r.AvgRating)))
	}
	return join("Рейтинг эффективности:", lines)
}

// FestivalPrices выводит сравнение цен фестивальных и обычных туров.
func FestivalPrices(rows []service.TourPriceComparison) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %d туров, средняя цена %s", r.Category, r.TourCount, formatNumber(r.AvgPrice)))
	}
	return join("Цены туров с фестивалями:", lines)
}

// MonthlyPayments выводит поступления по месяцам.
func MonthlyPayments(rows []service.MonthlyPaymentStats) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, monthlyLine(r))
	}
	return join("Платежи по месяцам:", lines)
}

func monthlyLine(r service.MonthlyPaymentStats) string {
	return fmt.Sprintf("%s: депозиты %s, полные оплаты %s, итого %s",
		r.Month, formatNumber(r.Deposits), formatNumber(r.FullPayments), formatNumber(r.TotalIncome))
}

// Performance выводит сводный рейтинг агентов.
func Performance(rows []service.EmployeePerformance) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, performanceLine(r))
	}
	return join("Рейтинг агентов:", lines)
}

func performanceLine(r service.EmployeePerformance) string {
	return fmt.Sprintf("%s: %s, ранг %d (продажи %s, средний чек %s, подтверждено %s%%)",
		r.EmployeeName, r.PerformanceCategory, r.CompositeRank,
		formatNumber(r.TotalSales), formatNumber(r.AvgCheck), formatNumber(r.ConfirmationRate))
}

// Activity выводит последнюю активность клиентов.
func Activity(rows []service.ClientActivitySummary) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s, %s, оценка %s, отзыв: %s",
			r.ClientName, r.LastBookingDate, r.LastTour, r.LastRating, r.LastReview))
	}
	return join("Активность клиентов:", lines)
}

// Themes выводит статистику тематических туров.
func Themes(rows []service.ThemeStats) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %d туров, %d бронирований, выручка %s, цены от %s до %s, оценка %s, хит: %s",
			r.Theme, r.TourCount, r.BookingsCount, formatNumber(r.TotalRevenue),
			formatNumber(r.MinPrice), formatNumber(r.MaxPrice), r.AvgRating, r.MostPopularTour))
	}
	return join("Тематики туров:", lines)
}

// Occupancy выводит загрузку отелей.
func Occupancy(rows []service.HotelOccupancy) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s (%s): %d бронирований, сложность %s",
			r.Month, r.HotelName, r.Season, r.Bookings, formatNumber(r.AvgTourDifficulty)))
	}
	return join("Загрузка отелей:", lines)
}

// Digest собирает сводку для рассылки: рейтинг агентов и платежи за последний месяц.
func Digest(perf []service.EmployeePerformance, monthly []service.MonthlyPaymentStats) string {
	var b strings.Builder
	b.WriteString(Performance(perf))
	b.WriteString("\n\nПоследний месяц:\n")
	if len(monthly) == 0 {
		b.WriteString(emptyReport)
	} else {
		b.WriteString(monthlyLine(monthly[len(monthly)-1]))
	}
	return b.String()
}
