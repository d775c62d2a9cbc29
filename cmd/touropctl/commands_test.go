package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/model"
	"tourism/internal/service"
)

type memStore struct {
	err       error
	gotClient int
	gotLimit  int
}

func (m *memStore) FindCoTravellers(ctx context.Context, clientID int) ([]model.ClientContact, error) {
	m.gotClient = clientID
	return []model.ClientContact{{ID: 2, FirstName: "Ivan"}}, m.err
}

func (m *memStore) RecentActivity(ctx context.Context, limit int) ([]model.ClientActivity, error) {
	m.gotLimit = limit
	return nil, m.err
}

func (m *memStore) ExcursionCounts(ctx context.Context) ([]model.TourExcursionCounts, error) {
	return nil, m.err
}

func (m *memStore) FestivalExposure(ctx context.Context) ([]model.TourFestivalExposure, error) {
	return nil, m.err
}

func (m *memStore) ThemedTours(ctx context.Context) ([]model.ThemedTourStats, error) {
	return nil, m.err
}

func (m *memStore) BookingActivity(ctx context.Context) ([]model.EmployeeActivity, error) {
	return nil, m.err
}

func (m *memStore) AgentMetrics(ctx context.Context, position string) ([]model.AgentMetrics, error) {
	return []model.AgentMetrics{{EmployeeID: 1, EmployeeName: "Anna Li", TotalBookings: 2, ConfirmedBookings: 1, TotalSales: decimal.NewFromInt(1500)}}, m.err
}

func (m *memStore) MonthlySums(ctx context.Context) ([]model.MonthlyPaymentSum, error) {
	return []model.MonthlyPaymentSum{
		{Month: "2024-01", IsDeposit: true, Amount: decimal.NewFromInt(100)},
		{Month: "2024-02", IsDeposit: false, Amount: decimal.NewFromInt(200)},
	}, m.err
}

func (m *memStore) Occupancy(ctx context.Context) ([]model.HotelOccupancy, error) {
	return nil, m.err
}

func newTestReports(store *memStore) *reportSet {
	return &reportSet{
		clients:   service.NewClientService(store, "en", 5),
		tours:     service.NewTourService(store, "en"),
		employees: service.NewEmployeeService(store),
		payments:  service.NewPaymentService(store),
		hotels:    service.NewHotelService(store),
	}
}

func TestRunReportEveryName(t *testing.T) {
	r := newTestReports(&memStore{})
	for _, name := range reportNames() {
		out, err := runReport(context.Background(), r, name, reportParams{ClientID: 1})
		require.NoError(t, err, name)
		assert.True(t, json.Valid(out), name)
	}
	assert.Len(t, reportNames(), 9)
}

func TestRunReportParams(t *testing.T) {
	store := &memStore{}
	r := newTestReports(store)

	out, err := runReport(context.Background(), r, "friends", reportParams{ClientID: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, store.gotClient)
	assert.Contains(t, string(out), `"client_id": 2`)

	_, err = runReport(context.Background(), r, "activity", reportParams{ClientID: 1, Limit: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, store.gotLimit)

	_, err = runReport(context.Background(), r, "friends", reportParams{ClientID: 0})
	assert.Error(t, err)
	_, err = runReport(context.Background(), r, "activity", reportParams{ClientID: 1, Limit: 101})
	assert.Error(t, err)
}

func TestRunReportUnknownAndFailing(t *testing.T) {
	_, err := runReport(context.Background(), newTestReports(&memStore{}), "weather", reportParams{ClientID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paid-excursions")

	_, err = runReport(context.Background(), newTestReports(&memStore{err: assert.AnError}), "themes", reportParams{ClientID: 1})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuildDigest(t *testing.T) {
	text, err := buildDigest(context.Background(), newTestReports(&memStore{}))
	require.NoError(t, err)
	assert.Contains(t, text, "Anna Li: Top Performer")
	assert.Contains(t, text, "2024-02: депозиты 0, полные оплаты 200, итого 200")

	_, err = buildDigest(context.Background(), newTestReports(&memStore{err: assert.AnError}))
	assert.ErrorIs(t, err, assert.AnError)
}
