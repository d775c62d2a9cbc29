package service

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Округление для ответа: деньги и проценты - 2 знака, оценки - 1 знак.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func ratio(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func rating(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

// Value - число либо текстовая заглушка для отсутствующих данных.
type Value struct {
	num  *float64
	text string
}

// Number возвращает числовое значение.
func Number(f float64) Value { return Value{num: &f} }

// Text возвращает текстовую заглушку.
func Text(s string) Value { return Value{text: s} }

// IsNumber сообщает, содержит ли значение число.
func (v Value) IsNumber() bool { return v.num != nil }

// Float возвращает число (0 для заглушки).
func (v Value) Float() float64 {
	if v.num == nil {
		return 0
	}
	return *v.num
}

func (v Value) String() string {
	if v.num == nil {
		return v.text
	}
	return strconv.FormatFloat(*v.num, 'f', -1, 64)
}

// MarshalJSON пишет число как число, а заглушку как строку.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.num == nil {
		return json.Marshal(v.text)
	}
	return json.Marshal(*v.num)
}

// Placeholders - локализованные заглушки для пустых значений в отчетах.
type Placeholders struct {
	NoBookings  string
	NeverBooked string
	NoRating    string
	NoReview    string
	NoReviews   string
}

var placeholders = map[string]Placeholders{
	"en": {
		NoBookings:  "No bookings",
		NeverBooked: "Never booked",
		NoRating:    "No rating",
		NoReview:    "No review",
		NoReviews:   "No reviews",
	},
	"ru": {
		NoBookings:  "Нет бронирований",
		NeverBooked: "Никогда не бронировал",
		NoRating:    "Нет оценки",
		NoReview:    "Нет отзыва",
		NoReviews:   "Нет отзывов",
	},
}

// PlaceholdersFor возвращает заглушки для локали; неизвестная локаль получает русские.
func PlaceholdersFor(locale string) Placeholders {
	if p, ok := placeholders[locale]; ok {
		return p
	}
	return placeholders["ru"]
}
