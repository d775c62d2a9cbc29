package main

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/model"
	"tourism/internal/service"
)

type memStore struct {
	err       error
	gotClient int
	chats     map[int64]bool
}

func (m *memStore) FindCoTravellers(ctx context.Context, clientID int) ([]model.ClientContact, error) {
	m.gotClient = clientID
	return []model.ClientContact{{ID: 2, FirstName: "Ivan", LastName: "Wu", Email: "ivan@example.com", Phone: "+7 900"}}, m.err
}

func (m *memStore) RecentActivity(ctx context.Context, limit int) ([]model.ClientActivity, error) {
	return []model.ClientActivity{{ClientID: 1, FirstName: "Anna", LastName: "Li"}}, m.err
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
	return nil, m.err
}

func (m *memStore) Occupancy(ctx context.Context) ([]model.HotelOccupancy, error) {
	return nil, m.err
}

func (m *memStore) Subscribe(ctx context.Context, chatID int64) error {
	m.chats[chatID] = true
	return m.err
}

func (m *memStore) Unsubscribe(ctx context.Context, chatID int64) error {
	delete(m.chats, chatID)
	return m.err
}

func (m *memStore) ChatIDs(ctx context.Context) ([]int64, error) {
	return nil, m.err
}

func newTestBot(store *memStore) *reportBot {
	return &reportBot{
		clients:         service.NewClientService(store, "ru", 5),
		tours:           service.NewTourService(store, "ru"),
		employees:       service.NewEmployeeService(store),
		payments:        service.NewPaymentService(store),
		hotels:          service.NewHotelService(store),
		subscriptions:   service.NewSubscriptionService(store),
		defaultClientID: 1,
		timeout:         time.Second,
	}
}

func TestReplyFriends(t *testing.T) {
	store := &memStore{chats: map[int64]bool{}}
	bot := newTestBot(store)

	text, err := bot.reply(context.Background(), 10, "friends", "")
	require.NoError(t, err)
	assert.Equal(t, 1, store.gotClient)
	assert.Contains(t, text, "#2 Ivan Wu")

	_, err = bot.reply(context.Background(), 10, "friends", " 5 ")
	require.NoError(t, err)
	assert.Equal(t, 5, store.gotClient)

	text, err = bot.reply(context.Background(), 10, "friends", "abc")
	require.NoError(t, err)
	assert.Contains(t, text, "Используйте")
}

func TestReplyReports(t *testing.T) {
	bot := newTestBot(&memStore{chats: map[int64]bool{}})

	text, err := bot.reply(context.Background(), 10, "performance", "")
	require.NoError(t, err)
	assert.Contains(t, text, "Top Performer")

	text, err = bot.reply(context.Background(), 10, "activity", "")
	require.NoError(t, err)
	assert.Contains(t, text, "Никогда не бронировал")

	text, err = bot.reply(context.Background(), 10, "themes", "")
	require.NoError(t, err)
	assert.Contains(t, text, "Нет данных.")

	text, err = bot.reply(context.Background(), 10, "activity", "500")
	require.NoError(t, err)
	assert.Contains(t, text, "Используйте")
}

func TestReplySubscriptions(t *testing.T) {
	store := &memStore{chats: map[int64]bool{}}
	bot := newTestBot(store)

	_, err := bot.reply(context.Background(), 77, "subscribe", "")
	require.NoError(t, err)
	assert.True(t, store.chats[77])

	_, err = bot.reply(context.Background(), 77, "unsubscribe", "")
	require.NoError(t, err)
	assert.False(t, store.chats[77])
}

func TestReplyErrorsAndUnknownCommands(t *testing.T) {
	bot := newTestBot(&memStore{err: assert.AnError, chats: map[int64]bool{}})

	_, err := bot.reply(context.Background(), 10, "monthly", "")
	assert.ErrorIs(t, err, assert.AnError)

	text, err := bot.reply(context.Background(), 10, "weather", "")
	require.NoError(t, err)
	assert.Contains(t, text, "/weather")

	text, err = bot.reply(context.Background(), 10, "start", "")
	require.NoError(t, err)
	assert.Equal(t, helpText, text)
}
