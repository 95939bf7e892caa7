package telegram

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

func operationText(op domain.OperationType) string {
	if op == domain.OperationBuy {
		return "покупка"
	}
	return "продажа"
}

// StatusTitle is the user-facing label for a status. The switch is
// exhaustive so a new status fails loudly at review, not silently at
// runtime.
func StatusTitle(status domain.RequestStatus) string {
	switch status {
	case domain.StatusPending:
		return "🆕 Новая"
	case domain.StatusProcessing:
		return "🔄 В обработке"
	case domain.StatusConfirmed:
		return "⏳ Ожидает ответа"
	case domain.StatusBooked:
		return "✅ Забронирована"
	case domain.StatusWaitingClient:
		return "💬 Ждет клиента"
	case domain.StatusCompleted:
		return "🏁 Завершена"
	case domain.StatusCancelled:
		return "❌ Отменена"
	case domain.StatusExpired:
		return "⌛ Истекла"
	default:
		return string(status)
	}
}

func QuoteMessage(request *domain.ExchangeRequest, offerTTL time.Duration) string {
	return fmt.Sprintf(`💱 Ответ по заявке #%d

%s

⚠️ Курс действителен только %d минут!`,
		request.ID,
		request.OperatorResponse,
		int(offerTTL.Minutes()),
	)
}

func ExpiredNotice(request *domain.ExchangeRequest) string {
	rate := ""
	if request.ExchangeRate.Valid {
		rate = request.ExchangeRate.Decimal.String()
	}

	expiresAt := ""
	if request.ExpiresAt != nil {
		expiresAt = request.ExpiresAt.Format("02.01.2006 15:04")
	}

	return fmt.Sprintf(`⏰ Срок действия курса по заявке #%d истек!

📋 Заявка: %s %s %s
🏙️ Город: %s
💱 Курс: %s
📅 Время истечения: %s

Для получения актуального курса создайте новую заявку командой /start`,
		request.ID,
		operationText(request.OperationType),
		request.Amount.String(),
		request.Currency,
		request.City,
		rate,
		expiresAt,
	)
}

func WaitElapsedNotice(request *domain.ExchangeRequest) string {
	return fmt.Sprintf(`⏰ Время ожидания по заявке #%d истекло.

📋 Заявка: %s %s %s
🏙️ Город: %s

Для получения актуального курса создайте новую заявку командой /start`,
		request.ID,
		operationText(request.OperationType),
		request.Amount.String(),
		request.Currency,
		request.City,
	)
}

func CancelledNotice(request *domain.ExchangeRequest) string {
	return fmt.Sprintf(`❌ Ваша заявка #%d была отменена администратором.

📋 Заявка: %s %s %s
🏙️ Город: %s

Вы можете создать новую заявку командой /start`,
		request.ID,
		operationText(request.OperationType),
		request.Amount.String(),
		request.Currency,
		request.City,
	)
}

func NewRequestNotice(request *domain.ExchangeRequest, user *domain.User) string {
	userInfo := user.FirstName
	if user.Username != "" {
		userInfo = "@" + user.Username
	}

	return fmt.Sprintf(`🔔 Новая заявка #%d

👤 Клиент: %s
📞 Telegram ID: %d
💱 Операция: %s
💰 Валюта: %s
💵 Сумма: %s
🏙️ Город: %s`,
		request.ID,
		userInfo,
		user.TelegramID,
		operationText(request.OperationType),
		request.Currency,
		request.Amount.String(),
		request.City,
	)
}

// UserActionNotice tells the operator channel what the user chose after
// receiving a quote.
func UserActionNotice(requestID uint, action string, user *domain.User) string {
	actionText := map[string]string{
		"book":      "✅ ЗАБРОНИРОВАЛ заявку",
		"clarify":   "💬 Просто уточнял курс",
		"wait_info": "⏳ Ждет дополнительную информацию",
		"cancelled": "❌ Заявка ОТМЕНЕНА администратором",
	}[action]
	if actionText == "" {
		actionText = "Выполнил действие"
	}

	userInfo := user.FirstName
	if user.Username != "" {
		userInfo = "@" + user.Username
	}

	return fmt.Sprintf(`📋 Обновление заявки #%d

👤 Клиент: %s
📞 Telegram ID: %d
🎯 Действие: %s`,
		requestID,
		userInfo,
		user.TelegramID,
		actionText,
	)
}
