package telegram

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleRequest() *domain.ExchangeRequest {
	expiresAt := time.Date(2024, 3, 1, 12, 10, 0, 0, time.UTC)
	return &domain.ExchangeRequest{
		ID:            7,
		UserID:        100500,
		OperationType: domain.OperationBuy,
		Currency:      domain.CurrencyUSDT,
		Amount:        decimal.NewFromInt(100),
		City:          "Moscow",
		Status:        domain.StatusConfirmed,
		ExchangeRate:  decimal.NewNullDecimal(decimal.RequireFromString("95.5")),
		ExpiresAt:     &expiresAt,
	}
}

func TestStatusTitleCoversEveryStatus(t *testing.T) {
	statuses := []domain.RequestStatus{
		domain.StatusPending,
		domain.StatusProcessing,
		domain.StatusConfirmed,
		domain.StatusBooked,
		domain.StatusWaitingClient,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusExpired,
	}

	seen := make(map[string]bool)
	for _, s := range statuses {
		title := StatusTitle(s)
		assert.NotEqual(t, string(s), title, "status %s has no label", s)
		assert.False(t, seen[title], "label %q reused", title)
		seen[title] = true
	}

	assert.Equal(t, "SOMETHING_NEW", StatusTitle(domain.RequestStatus("SOMETHING_NEW")))
}

func TestQuoteMessageMentionsDeadline(t *testing.T) {
	request := sampleRequest()
	request.OperatorResponse = "Курс 95.5, встреча у метро"

	text := QuoteMessage(request, 10*time.Minute)
	assert.Contains(t, text, "#7")
	assert.Contains(t, text, "Курс 95.5, встреча у метро")
	assert.Contains(t, text, "10 минут")
}

func TestExpiredNoticeIncludesQuoteDetails(t *testing.T) {
	text := ExpiredNotice(sampleRequest())
	assert.Contains(t, text, "#7")
	assert.Contains(t, text, "95.5")
	assert.Contains(t, text, "01.03.2024 12:10")
	assert.Contains(t, text, "Moscow")
}

func TestExpiredNoticeWithoutQuote(t *testing.T) {
	request := sampleRequest()
	request.ExchangeRate = decimal.NullDecimal{}
	request.ExpiresAt = nil

	// Never panics on a request that was never quoted
	text := ExpiredNotice(request)
	assert.Contains(t, text, "#7")
}

func TestUserActionNotice(t *testing.T) {
	user := &domain.User{TelegramID: 100500, FirstName: "Ivan", Username: "ivan_m"}

	text := UserActionNotice(7, "book", user)
	assert.Contains(t, text, "@ivan_m")
	assert.Contains(t, text, "ЗАБРОНИРОВАЛ")

	unknown := UserActionNotice(7, "shrug", user)
	assert.Contains(t, unknown, "Выполнил действие")
}

func TestNewRequestNoticeFallsBackToFirstName(t *testing.T) {
	user := &domain.User{TelegramID: 100500, FirstName: "Ivan"}

	text := NewRequestNotice(sampleRequest(), user)
	assert.Contains(t, text, "Ivan")
	assert.Contains(t, text, "100500")
}
