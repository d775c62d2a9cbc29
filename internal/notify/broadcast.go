package notify

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLength - ограничение Telegram на длину текста сообщения.
const MaxMessageLength = 4096

// Sender отправляет сообщения в Telegram; *tgbotapi.BotAPI ему удовлетворяет.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Broadcaster рассылает текст по списку чатов.
type Broadcaster struct {
	sender Sender
	logger *log.Logger
}

// NewBroadcaster создает рассылку поверх Sender.
func NewBroadcaster(sender Sender, logger *log.Logger) *Broadcaster {
	return &Broadcaster{sender: sender, logger: logger}
}

// SendText отправляет текст в один чат, разбивая его на части по MaxMessageLength.
func (b *Broadcaster) SendText(chatID int64, text string) error {
	for _, part := range SplitMessage(text, MaxMessageLength) {
		if _, err := b.sender.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			return err
		}
	}
	return nil
}

// Broadcast отправляет текст во все чаты и возвращает число чатов, получивших его.
// Ошибка доставки в один чат логируется и не прерывает рассылку.
func (b *Broadcaster) Broadcast(ctx context.Context, chatIDs []int64, text string) int {
	delivered := 0
	for _, id := range chatIDs {
		if ctx.Err() != nil {
			b.logger.Printf("Рассылка прервана: %v", ctx.Err())
			break
		}
		if err := b.SendText(id, text); err != nil {
			b.logger.Printf("Не удалось отправить сводку в чат %d: %v", id, err)
			continue
		}
		delivered++
	}
	return delivered
}

// SplitMessage делит текст на части не длиннее limit байт, по возможности по границам строк.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			flush()
			cut := limit
			for cut > 0 && !isRuneStart(line[cut]) {
				cut--
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		extra := len(line)
		if cur.Len() > 0 {
			extra++
		}
		if cur.Len()+extra > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	flush()
	return parts
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
