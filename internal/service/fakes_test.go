package service

import (
	"context"

	"tourism/internal/model"
)

type fakeEmployeeStore struct {
	activity []model.EmployeeActivity
	agents   []model.AgentMetrics
	position string
	err      error
}

func (f *fakeEmployeeStore) BookingActivity(ctx context.Context) ([]model.EmployeeActivity, error) {
	return f.activity, f.err
}

func (f *fakeEmployeeStore) AgentMetrics(ctx context.Context, position string) ([]model.AgentMetrics, error) {
	f.position = position
	return f.agents, f.err
}

type fakeClientStore struct {
	friends   []model.ClientContact
	activity  []model.ClientActivity
	gotClient int
	gotLimit  int
	err       error
}

func (f *fakeClientStore) FindCoTravellers(ctx context.Context, clientID int) ([]model.ClientContact, error) {
	f.gotClient = clientID
	return f.friends, f.err
}

func (f *fakeClientStore) RecentActivity(ctx context.Context, limit int) ([]model.ClientActivity, error) {
	f.gotLimit = limit
	return f.activity, f.err
}

type fakePaymentStore struct {
	sums []model.MonthlyPaymentSum
	err  error
}

func (f *fakePaymentStore) MonthlySums(ctx context.Context) ([]model.MonthlyPaymentSum, error) {
	return f.sums, f.err
}

type fakeTourStore struct {
	excursions []model.TourExcursionCounts
	festivals  []model.TourFestivalExposure
	themed     []model.ThemedTourStats
	err        error
}

func (f *fakeTourStore) ExcursionCounts(ctx context.Context) ([]model.TourExcursionCounts, error) {
	return f.excursions, f.err
}

func (f *fakeTourStore) FestivalExposure(ctx context.Context) ([]model.TourFestivalExposure, error) {
	return f.festivals, f.err
}

func (f *fakeTourStore) ThemedTours(ctx context.Context) ([]model.ThemedTourStats, error) {
	return f.themed, f.err
}

type fakeHotelStore struct {
	rows []model.HotelOccupancy
	err  error
}

func (f *fakeHotelStore) Occupancy(ctx context.Context) ([]model.HotelOccupancy, error) {
	return f.rows, f.err
}

type fakeSubscriptionStore struct {
	chats map[int64]bool
}

func (f *fakeSubscriptionStore) Subscribe(ctx context.Context, chatID int64) error {
	if f.chats == nil {
		f.chats = map[int64]bool{}
	}
	f.chats[chatID] = true
	return nil
}

func (f *fakeSubscriptionStore) Unsubscribe(ctx context.Context, chatID int64) error {
	delete(f.chats, chatID)
	return nil
}

func (f *fakeSubscriptionStore) ChatIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	for id := range f.chats {
		ids = append(ids, id)
	}
	return ids, nil
}
