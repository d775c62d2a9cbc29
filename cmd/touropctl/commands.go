package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tourism/internal/config"
	"tourism/internal/notify"
	"tourism/internal/repository"
	"tourism/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// reportSet объединяет сервисы отчетов.
type reportSet struct {
	clients   *service.ClientService
	tours     *service.TourService
	employees *service.EmployeeService
	payments  *service.PaymentService
	hotels    *service.HotelService
}

func newReportSet(db *sqlx.DB, cfg *config.Config) *reportSet {
	return &reportSet{
		clients:   service.NewClientService(repository.NewClientRepository(db), cfg.Locale, cfg.ActivityLimit),
		tours:     service.NewTourService(repository.NewTourRepository(db), cfg.Locale),
		employees: service.NewEmployeeService(repository.NewEmployeeRepository(db)),
		payments:  service.NewPaymentService(repository.NewPaymentRepository(db)),
		hotels:    service.NewHotelService(repository.NewHotelRepository(db)),
	}
}

// reportParams - аргументы отчетов, принимающих параметры.
type reportParams struct {
	ClientID int
	Limit    int
}

type reportFunc func(ctx context.Context, r *reportSet, p reportParams) (any, error)

var reports = map[string]reportFunc{
	"friends": func(ctx context.Context, r *reportSet, p reportParams) (any, error) {
		return r.clients.Friends(ctx, p.ClientID)
	},
	"paid-excursions": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.tours.PaidExcursions(ctx)
	},
	"employee-ratings": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.employees.Ratings(ctx)
	},
	"festival-prices": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.tours.FestivalPriceComparison(ctx)
	},
	"monthly-payments": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.payments.MonthlyStats(ctx)
	},
	"performance": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.employees.Performance(ctx)
	},
	"activity": func(ctx context.Context, r *reportSet, p reportParams) (any, error) {
		return r.clients.Activity(ctx, p.Limit)
	},
	"themes": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.tours.ThemeAnalysis(ctx)
	},
	"occupancy": func(ctx context.Context, r *reportSet, _ reportParams) (any, error) {
		return r.hotels.Occupancy(ctx)
	},
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runReport строит отчет по имени и возвращает его в виде JSON с отступами.
func runReport(ctx context.Context, r *reportSet, name string, p reportParams) ([]byte, error) {
	fn, ok := reports[name]
	if !ok {
		return nil, fmt.Errorf("неизвестный отчет %q, доступны: %s", name, strings.Join(reportNames(), ", "))
	}
	if name == "friends" && p.ClientID <= 0 {
		return nil, errors.New("--client-id должен быть положительным")
	}
	if name == "activity" && (p.Limit < 0 || p.Limit > 100) {
		return nil, errors.New("--limit должен быть от 1 до 100")
	}
	rows, err := fn(ctx, r, p)
	if err != nil {
		return nil, fmt.Errorf("отчет %s: %w", name, err)
	}
	return json.MarshalIndent(rows, "", "  ")
}

func connect(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить SQL-миграции",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dir == "" {
				dir = cfg.MigrationsDir
			}
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := repository.RunMigrations(cmd.Context(), db, dir, cfg.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Применено миграций: %d\n", applied)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "каталог миграций (по умолчанию MIGRATIONS_DIR)")
	return cmd
}

func reportCmd() *cobra.Command {
	var clientID, limit int
	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Построить отчет и вывести JSON",
		Long:  "Доступные отчеты: " + strings.Join(reportNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("client-id") {
				clientID = cfg.DistinguishedClientID
			}
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QueryTimeout)
			defer cancel()
			out, err := runReport(ctx, newReportSet(db, cfg), args[0], reportParams{ClientID: clientID, Limit: limit})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&clientID, "client-id", 0, "клиент для отчета friends (по умолчанию DISTINGUISHED_CLIENT_ID)")
	cmd.Flags().IntVar(&limit, "limit", 0, "размер отчета activity (по умолчанию ACTIVITY_LIMIT)")
	return cmd
}

// buildDigest собирает текст сводки из рейтинга агентов и платежей.
func buildDigest(ctx context.Context, r *reportSet) (string, error) {
	perf, err := r.employees.Performance(ctx)
	if err != nil {
		return "", fmt.Errorf("рейтинг агентов: %w", err)
	}
	monthly, err := r.payments.MonthlyStats(ctx)
	if err != nil {
		return "", fmt.Errorf("платежи по месяцам: %w", err)
	}
	return notify.Digest(perf, monthly), nil
}

func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Разослать сводку отчетов подписанным чатам",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.BotToken == "" {
				return errors.New("не указан токен бота (BOT_TOKEN)")
			}
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QueryTimeout)
			defer cancel()
			text, err := buildDigest(ctx, newReportSet(db, cfg))
			if err != nil {
				return err
			}
			chats, err := service.NewSubscriptionService(repository.NewSubscriptionRepository(db)).Recipients(ctx)
			if err != nil {
				return err
			}

			api, err := tgbotapi.NewBotAPI(cfg.BotToken)
			if err != nil {
				return fmt.Errorf("ошибка инициализации бота: %w", err)
			}
			delivered := notify.NewBroadcaster(api, cfg.Logger).Broadcast(cmd.Context(), chats, text)
			fmt.Fprintf(cmd.OutOrStdout(), "Сводка доставлена в %d из %d чатов\n", delivered, len(chats))
			return nil
		},
	}
}
