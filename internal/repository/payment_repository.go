package repository

import (
	"context"
	"fmt"

	"tourism/internal/model"

	"github.com/jmoiron/sqlx"
)

// PaymentRepository обеспечивает доступ к платежам по бронированиям.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository создает новый репозиторий платежей.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// MonthlySums возвращает суммы платежей по месяцам отдельно для депозитов и полных оплат.
// Месяц без платежей какого-либо вида строки для этого вида не содержит.
func (r *PaymentRepository) MonthlySums(ctx context.Context) ([]model.MonthlyPaymentSum, error) {
	const query = `
SELECT to_char(date_trunc('month', payment_date), 'YYYY-MM') AS month,
       is_deposit,
       SUM(amount) AS amount
FROM payments
GROUP BY 1, 2
ORDER BY 1, 2`
	sums := []model.MonthlyPaymentSum{}
	if err := r.db.SelectContext(ctx, &sums, query); err != nil {
		return nil, fmt.Errorf("ошибка при группировке платежей по месяцам: %w", err)
	}
	return sums, nil
}
