package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

const botAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers plain-text messages through the Bot API.
// Keyboards and message editing belong to the bot layer, not here.
type TelegramNotifier struct {
	token          string
	operatorChatID int64
	client         *http.Client
}

func NewTelegramNotifier(token string, operatorChatID int64, timeout time.Duration) *TelegramNotifier {
	return &TelegramNotifier{
		token:          token,
		operatorChatID: operatorChatID,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (n *TelegramNotifier) NotifyUser(ctx context.Context, telegramID int64, text string) error {
	return n.sendMessage(ctx, telegramID, text)
}

func (n *TelegramNotifier) NotifyOperatorChannel(ctx context.Context, text string) error {
	return n.sendMessage(ctx, n.operatorChatID, text)
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", botAPIBase, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 403 здесь обычно значит, что пользователь заблокировал бота
		return fmt.Errorf("%w: telegram returned %s", domain.ErrDeliveryFailed, resp.Status)
	}

	return nil
}
