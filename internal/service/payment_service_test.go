package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/model"
)

func TestPaymentService_MonthlyStats(t *testing.T) {
	store := &fakePaymentStore{sums: []model.MonthlyPaymentSum{
		{Month: "2024-02", IsDeposit: true, Amount: decimal.NewFromInt(50)},
		{Month: "2024-01", IsDeposit: true, Amount: decimal.NewFromInt(100)},
		{Month: "2024-01", IsDeposit: false, Amount: decimal.NewFromInt(200)},
	}}

	rows, err := NewPaymentService(store).MonthlyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []MonthlyPaymentStats{
		{Month: "2024-01", Deposits: 100, FullPayments: 200, TotalIncome: 300},
		{Month: "2024-02", Deposits: 50, FullPayments: 0, TotalIncome: 50},
	}, rows)
}

func TestPaymentService_MonthlyStatsKeepsCents(t *testing.T) {
	store := &fakePaymentStore{sums: []model.MonthlyPaymentSum{
		{Month: "2024-05", IsDeposit: true, Amount: decimal.RequireFromString("0.10")},
		{Month: "2024-05", IsDeposit: false, Amount: decimal.RequireFromString("0.20")},
	}}

	rows, err := NewPaymentService(store).MonthlyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.3, rows[0].TotalIncome)
}

func TestPaymentService_MonthlyStatsError(t *testing.T) {
	_, err := NewPaymentService(&fakePaymentStore{err: assert.AnError}).MonthlyStats(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
