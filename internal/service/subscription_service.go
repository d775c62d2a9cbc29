package service

import "context"

// SubscriptionStore хранит чаты, подписанные на дайджест.
type SubscriptionStore interface {
	Subscribe(ctx context.Context, chatID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	ChatIDs(ctx context.Context) ([]int64, error)
}

// SubscriptionService содержит логику подписки чатов на дайджест отчетов.
type SubscriptionService struct {
	store SubscriptionStore
}

// NewSubscriptionService создает новый сервис подписок.
func NewSubscriptionService(store SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Subscribe оформляет подписку чата на дайджест.
func (s *SubscriptionService) Subscribe(ctx context.Context, chatID int64) error {
	return s.store.Subscribe(ctx, chatID)
}

// Unsubscribe отменяет подписку чата.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, chatID int64) error {
	return s.store.Unsubscribe(ctx, chatID)
}

// Recipients возвращает ID всех подписанных чатов.
func (s *SubscriptionService) Recipients(ctx context.Context) ([]int64, error) {
	return s.store.ChatIDs(ctx)
}
