package model

import "github.com/shopspring/decimal"

// Статусы бронирования.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingCompleted = "Completed"
)

// MonthlyPaymentSum - сумма платежей одного вида (депозит или полная оплата) за календарный месяц.
type MonthlyPaymentSum struct {
	Month     string          `db:"month"` // "YYYY-MM"
	IsDeposit bool            `db:"is_deposit"`
	Amount    decimal.Decimal `db:"amount"`
}
