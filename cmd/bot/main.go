package main

import (
	"context"
	"log"

	"tourism/internal/config"
	"tourism/internal/notify"
	"tourism/internal/repository"
	"tourism/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения")
	}
	cfg := config.Load()
	logger := cfg.Logger

	// Подключение к базе данных
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Fatalf("DB connection failed: %v", err)
	}
	defer db.Close()

	// Инициализация репозиториев и сервисов
	bot := &reportBot{
		clients:         service.NewClientService(repository.NewClientRepository(db), cfg.Locale, cfg.ActivityLimit),
		tours:           service.NewTourService(repository.NewTourRepository(db), cfg.Locale),
		employees:       service.NewEmployeeService(repository.NewEmployeeRepository(db)),
		payments:        service.NewPaymentService(repository.NewPaymentRepository(db)),
		hotels:          service.NewHotelService(repository.NewHotelRepository(db)),
		subscriptions:   service.NewSubscriptionService(repository.NewSubscriptionRepository(db)),
		defaultClientID: cfg.DistinguishedClientID,
		timeout:         cfg.QueryTimeout,
	}

	// Инициализация Telegram Bot API
	if cfg.BotToken == "" {
		logger.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("Ошибка инициализации бота:", err)
	}
	logger.Printf("Запущен бот %s", api.Self.UserName)
	out := notify.NewBroadcaster(api, logger)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for update := range updates {
		msg := update.Message
		if msg == nil || !msg.IsCommand() {
			continue
		}
		chatID := msg.Chat.ID

		if !cfg.ChatAllowed(chatID) {
			if err := out.SendText(chatID, "Доступ к отчетам закрыт для этого чата."); err != nil {
				logger.Printf("Не удалось ответить в чат %d: %v", chatID, err)
			}
			continue
		}

		text, err := bot.reply(context.Background(), chatID, msg.Command(), msg.CommandArguments())
		if err != nil {
			logger.Printf("Команда /%s в чате %d завершилась ошибкой: %v", msg.Command(), chatID, err)
			text = "Не удалось построить отчет, попробуйте позже."
		}
		if err := out.SendText(chatID, text); err != nil {
			logger.Printf("Не удалось ответить в чат %d: %v", chatID, err)
		}
	}
}
