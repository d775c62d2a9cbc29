package service

import (
	"context"
	"sort"

	"tourism/internal/model"

	"github.com/shopspring/decimal"
)

// PaymentStore - источник сумм платежей.
type PaymentStore interface {
	MonthlySums(ctx context.Context) ([]model.MonthlyPaymentSum, error)
}

// PaymentService содержит бизнес-логику отчетов по платежам.
type PaymentService struct {
	store PaymentStore
}

// NewPaymentService создает новый сервис платежей.
func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{store: store}
}

// MonthlyPaymentStats - поступления за месяц.
type MonthlyPaymentStats struct {
	Month        string  `json:"month"`
	Deposits     float64 `json:"deposits"`
	FullPayments float64 `json:"full_payments"`
	TotalIncome  float64 `json:"total_income"`
}

// MonthlyStats возвращает по строке на каждый месяц с платежами в хронологическом порядке.
// Вид платежа, которого в месяце не было, дает 0.
func (s *PaymentService) MonthlyStats(ctx context.Context) ([]MonthlyPaymentStats, error) {
	sums, err := s.store.MonthlySums(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct{ deposits, full decimal.Decimal }
	buckets := make(map[string]*bucket)
	for _, sum := range sums {
		b, ok := buckets[sum.Month]
		if !ok {
			b = &bucket{}
			buckets[sum.Month] = b
		}
		if sum.IsDeposit {
			b.deposits = b.deposits.Add(sum.Amount)
		} else {
			b.full = b.full.Add(sum.Amount)
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthlyPaymentStats, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		out = append(out, MonthlyPaymentStats{
			Month:        month,
			Deposits:     money(b.deposits),
			FullPayments: money(b.full),
			TotalIncome:  money(b.deposits.Add(b.full)),
		})
	}
	return out, nil
}
