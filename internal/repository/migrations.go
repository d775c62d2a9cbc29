package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
)

// RunMigrations применяет SQL-файлы из каталога dir в лексикографическом порядке.
// Каждый файл выполняется в отдельной транзакции, примененные файлы записываются в
// schema_migrations и при повторном запуске пропускаются. Возвращает число примененных файлов.
func RunMigrations(ctx context.Context, db *sqlx.DB, dir string, logger *log.Logger) (int, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL DEFAULT NOW()
)`); err != nil {
		return 0, fmt.Errorf("не удалось создать таблицу миграций: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("ошибка поиска файлов миграций: %w", err)
	}
	sort.Strings(files)

	applied := []string{}
	if err := db.SelectContext(ctx, &applied, "SELECT name FROM schema_migrations"); err != nil {
		return 0, fmt.Errorf("ошибка чтения примененных миграций: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	count := 0
	for _, file := range files {
		name := filepath.Base(file)
		if done[name] {
			continue
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return count, fmt.Errorf("не удалось прочитать миграцию %s: %w", name, err)
		}
		if err := applyMigration(ctx, db, name, string(content)); err != nil {
			return count, err
		}
		logger.Printf("Миграция %s применена.", name)
		count++
	}
	return count, nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, name, content string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при инициации транзакции миграции %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, content); err != nil {
		tx.Rollback()
		return fmt.Errorf("миграция %s завершилась ошибкой: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось отметить миграцию %s: %w", name, err)
	}
	return tx.Commit()
}
