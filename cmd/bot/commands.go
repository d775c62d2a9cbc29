package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourism/internal/notify"
	"tourism/internal/service"
)

const helpText = `Отчеты туроператора:
/friends [client_id] - попутчики клиента
/excursions - туры с платными экскурсиями
/ratings - рейтинг эффективности сотрудников
/festivals - цены туров с фестивалями
/monthly - платежи по месяцам
/performance - рейтинг агентов
/activity [N] - последняя активность клиентов
/themes - тематики туров
/occupancy - загрузка отелей
/subscribe - подписаться на сводку
/unsubscribe - отписаться от сводки`

// reportBot отвечает на команды чата текстом отчета.
type reportBot struct {
	clients       *service.ClientService
	tours         *service.TourService
	employees     *service.EmployeeService
	payments      *service.PaymentService
	hotels        *service.HotelService
	subscriptions *service.SubscriptionService

	defaultClientID int
	timeout         time.Duration
}

// reply строит ответ на команду. Ошибки хранилища возвращаются вызывающему для логирования.
func (b *reportBot) reply(ctx context.Context, chatID int64, command, args string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	switch command {
	case "start", "help":
		return helpText, nil

	case "friends":
		clientID := b.defaultClientID
		if args = strings.TrimSpace(args); args != "" {
			id, err := strconv.Atoi(args)
			if err != nil || id <= 0 {
				return "Используйте: /friends <ид_клиента>", nil
			}
			clientID = id
		}
		rows, err := b.clients.Friends(ctx, clientID)
		if err != nil {
			return "", err
		}
		return notify.Friends(clientID, rows), nil

	case "excursions":
		rows, err := b.tours.PaidExcursions(ctx)
		if err != nil {
			return "", err
		}
		return notify.PaidExcursions(rows), nil

	case "ratings":
		rows, err := b.employees.Ratings(ctx)
		if err != nil {
			return "", err
		}
		return notify.EmployeeRatings(rows), nil

	case "festivals":
		rows, err := b.tours.FestivalPriceComparison(ctx)
		if err != nil {
			return "", err
		}
		return notify.FestivalPrices(rows), nil

	case "monthly":
		rows, err := b.payments.MonthlyStats(ctx)
		if err != nil {
			return "", err
		}
		return notify.MonthlyPayments(rows), nil

	case "performance":
		rows, err := b.employees.Performance(ctx)
		if err != nil {
			return "", err
		}
		return notify.Performance(rows), nil

	case "activity":
		limit := 0
		if args = strings.TrimSpace(args); args != "" {
			n, err := strconv.Atoi(args)
			if err != nil || n <= 0 || n > 100 {
				return "Используйте: /activity <1-100>", nil
			}
			limit = n
		}
		rows, err := b.clients.Activity(ctx, limit)
		if err != nil {
			return "", err
		}
		return notify.Activity(rows), nil

	case "themes":
		rows, err := b.tours.ThemeAnalysis(ctx)
		if err != nil {
			return "", err
		}
		return notify.Themes(rows), nil

	case "occupancy":
		rows, err := b.hotels.Occupancy(ctx)
		if err != nil {
			return "", err
		}
		return notify.Occupancy(rows), nil

	case "subscribe":
		if err := b.subscriptions.Subscribe(ctx, chatID); err != nil {
			return "", err
		}
		return "Чат подписан на сводку отчетов.", nil

	case "unsubscribe":
		if err := b.subscriptions.Unsubscribe(ctx, chatID); err != nil {
			return "", err
		}
		return "Чат отписан от сводки.", nil
	}
	return fmt.Sprintf("Неизвестная команда /%s. Введите /start для списка команд.", command), nil
}
