package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubscriptionRepository хранит чаты, подписанные на дайджест отчетов.
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository создает новый репозиторий подписок.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe добавляет чат в список подписчиков (если еще не подписан).
func (r *SubscriptionRepository) Subscribe(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO report_subscriptions (chat_id) VALUES ($1) ON CONFLICT DO NOTHING", chatID)
	if err != nil {
		return fmt.Errorf("не удалось оформить подписку: %w", err)
	}
	return nil
}

// Unsubscribe удаляет чат из подписчиков.
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM report_subscriptions WHERE chat_id=$1", chatID)
	if err != nil {
		return fmt.Errorf("не удалось отменить подписку: %w", err)
	}
	return nil
}

// ChatIDs возвращает идентификаторы всех подписанных чатов.
func (r *SubscriptionRepository) ChatIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, "SELECT chat_id FROM report_subscriptions ORDER BY chat_id"); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка подписчиков: %w", err)
	}
	return ids, nil
}
