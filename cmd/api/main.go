package main

import (
	"context"
	"log"

	"tourism/internal/config"
	"tourism/internal/handler"
	"tourism/internal/repository"
	"tourism/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения")
	}
	cfg := config.Load()
	logger := cfg.Logger

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	defer db.Close()

	// Выполняем миграции (если включены)
	if cfg.AutoMigrate {
		applied, err := repository.RunMigrations(context.Background(), db, cfg.MigrationsDir, logger)
		if err != nil {
			logger.Fatalf("Ошибка миграций: %v", err)
		}
		logger.Printf("Применено миграций: %d", applied)
	}

	// Инициализируем репозитории
	clientRepo := repository.NewClientRepository(db)
	tourRepo := repository.NewTourRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	// Инициализируем сервисы
	clientService := service.NewClientService(clientRepo, cfg.Locale, cfg.ActivityLimit)
	tourService := service.NewTourService(tourRepo, cfg.Locale)
	employeeService := service.NewEmployeeService(employeeRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	hotelService := service.NewHotelService(hotelRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(clientService, tourService, employeeService, paymentService, hotelService,
		db, logger, handler.Options{
			DistinguishedClientID: cfg.DistinguishedClientID,
			ActivityLimit:         cfg.ActivityLimit,
			QueryTimeout:          cfg.QueryTimeout,
		})
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	handler.SetupRoutes(router, h, cfg.AllowedOrigins)

	// Запускаем HTTP-сервер
	logger.Printf("API слушает порт %s", cfg.APIPort)
	if err := router.Run(":" + cfg.APIPort); err != nil {
		logger.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
