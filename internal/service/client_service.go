package service

import (
	"context"
	"sort"
	"strings"

	"tourism/internal/model"
)

const activityDateLayout = "2006-01-02 15:04"

// ClientStore - источник данных о клиентах и их активности.
type ClientStore interface {
	FindCoTravellers(ctx context.Context, clientID int) ([]model.ClientContact, error)
	RecentActivity(ctx context.Context, limit int) ([]model.ClientActivity, error)
}

// ClientService содержит бизнес-логику отчетов по клиентам.
type ClientService struct {
	store         ClientStore
	placeholders  Placeholders
	activityLimit int
}

// NewClientService создает новый сервис клиентов.
// activityLimit задает размер отчета об активности по умолчанию.
func NewClientService(store ClientStore, locale string, activityLimit int) *ClientService {
	if activityLimit <= 0 {
		activityLimit = 5
	}
	return &ClientService{store: store, placeholders: PlaceholdersFor(locale), activityLimit: activityLimit}
}

// Friends возвращает клиентов, бронировавших хотя бы один тур, который бронировал clientID.
// Результат без повторов и отсортирован по идентификатору клиента.
func (s *ClientService) Friends(ctx context.Context, clientID int) ([]model.ClientContact, error) {
	clients, err := s.store.FindCoTravellers(ctx, clientID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(clients))
	out := make([]model.ClientContact, 0, len(clients))
	for _, c := range clients {
		if c.ID == clientID || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ClientActivitySummary - последняя активность клиента.
type ClientActivitySummary struct {
	ClientID        int    `json:"client_id"`
	ClientName      string `json:"client_name"`
	LastBookingDate string `json:"last_booking_date"`
	LastTour        string `json:"last_tour"`
	LastRating      Value  `json:"last_rating"`
	LastReview      string `json:"last_review"`
}

// Activity возвращает клиентов с самыми свежими бронированиями. limit <= 0 означает размер по умолчанию.
// Отсутствующие значения заменяются локализованными заглушками.
func (s *ClientService) Activity(ctx context.Context, limit int) ([]ClientActivitySummary, error) {
	if limit <= 0 {
		limit = s.activityLimit
	}
	rows, err := s.store.RecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(rows))
	out := make([]ClientActivitySummary, 0, len(rows))
	for _, row := range rows {
		if seen[row.ClientID] {
			continue
		}
		seen[row.ClientID] = true

		item := ClientActivitySummary{
			ClientID:        row.ClientID,
			ClientName:      strings.TrimSpace(row.FirstName + " " + row.LastName),
			LastBookingDate: s.placeholders.NeverBooked,
			LastTour:        s.placeholders.NoBookings,
			LastRating:      Text(s.placeholders.NoRating),
			LastReview:      s.placeholders.NoReview,
		}
		if row.LastBookingDate.Valid {
			item.LastBookingDate = row.LastBookingDate.Time.Format(activityDateLayout)
		}
		if row.LastTourName.Valid && row.LastTourName.String != "" {
			item.LastTour = row.LastTourName.String
		}
		if row.LastRating.Valid {
			item.LastRating = Number(float64(row.LastRating.Int64))
		}
		if row.LastComment.Valid && row.LastComment.String != "" {
			item.LastReview = row.LastComment.String
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
