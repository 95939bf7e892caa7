package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/telegram"
	requestdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/request"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/request"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/user"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RequestHandler struct {
	ExchangeUsecase request.ExchangeUsecase
	UserUsecase     user.UserUsecase
	Notifier        domain.Notifier
	OfferTTL        time.Duration
}

func NewRequestHandler(
	exchangeUC request.ExchangeUsecase,
	userUC user.UserUsecase,
	notifier domain.Notifier,
	offerTTL time.Duration) *RequestHandler {

	return &RequestHandler{
		ExchangeUsecase: exchangeUC,
		UserUsecase:     userUC,
		Notifier:        notifier,
		OfferTTL:        offerTTL,
	}
}

type createRequestBody struct {
	UserID        int64  `json:"user_id" binding:"required"`
	OperationType string `json:"operation_type" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	City          string `json:"city" binding:"required"`
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	created, err := h.ExchangeUsecase.CreateRequest(c.Request.Context(), &requestdto.CreateRequestInput{
		UserID:        body.UserID,
		OperationType: domain.OperationType(body.OperationType),
		Currency:      domain.Currency(body.Currency),
		Amount:        amount,
		City:          body.City,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Best-effort: the request row is already committed
	if owner, userErr := h.UserUsecase.GetUserByTelegramID(created.UserID); userErr == nil {
		h.notifyOperator(c, telegram.NewRequestNotice(created, owner))
	}

	c.JSON(http.StatusCreated, requestdto.ToRequestOutput(created))
}

type confirmRequestBody struct {
	ExchangeRate     string `json:"exchange_rate" binding:"required"`
	OperatorResponse string `json:"operator_response" binding:"required"`
	OperatorName     string `json:"operator_name"`
}

func (h *RequestHandler) ConfirmRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	var body confirmRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := decimal.NewFromString(body.ExchangeRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange rate"})
		return
	}

	confirmed, err := h.ExchangeUsecase.ConfirmRequest(c.Request.Context(), &requestdto.ConfirmRequestInput{
		RequestID:        requestID,
		ExchangeRate:     rate,
		OperatorResponse: body.OperatorResponse,
		OperatorName:     body.OperatorName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Quote delivery is this layer's job, not the engine's
	if err := h.Notifier.NotifyUser(c.Request.Context(), confirmed.UserID, telegram.QuoteMessage(confirmed, h.OfferTTL)); err != nil {
		slog.Error("failed to deliver quote", "request_id", confirmed.ID, "error", err.Error())
	}

	c.JSON(http.StatusOK, requestdto.ToRequestOutput(confirmed))
}

func (h *RequestHandler) BookRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	booked, err := h.ExchangeUsecase.BookRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notifyOperatorAction(c, booked, "book")
	c.JSON(http.StatusOK, requestdto.ToRequestOutput(booked))
}

func (h *RequestHandler) MarkWaitingClient(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	updated, err := h.ExchangeUsecase.MarkWaitingClient(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notifyOperatorAction(c, updated, "wait_info")
	c.JSON(http.StatusOK, requestdto.ToRequestOutput(updated))
}

// ClarifyRequest changes no state: the user thanked the operator for the
// quote, the offer simply keeps ticking until the deadline.
func (h *RequestHandler) ClarifyRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	current, err := h.ExchangeUsecase.GetRequestByID(requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notifyOperatorAction(c, current, "clarify")
	c.JSON(http.StatusOK, requestdto.ToRequestOutput(current))
}

func (h *RequestHandler) CancelRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	cancelled, err := h.ExchangeUsecase.CancelRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	if cancelled.Status == domain.StatusCancelled {
		if err := h.Notifier.NotifyUser(c.Request.Context(), cancelled.UserID, telegram.CancelledNotice(cancelled)); err != nil {
			slog.Error("failed to deliver cancel notice", "request_id", cancelled.ID, "error", err.Error())
		}
		h.notifyOperatorAction(c, cancelled, "cancelled")
	}

	c.JSON(http.StatusOK, requestdto.ToRequestOutput(cancelled))
}

func (h *RequestHandler) CompleteRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	completed, err := h.ExchangeUsecase.CompleteRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requestdto.ToRequestOutput(completed))
}

type operatorMessageBody struct {
	MessageID int64 `json:"message_id" binding:"required"`
}

// SetOperatorMessage is called by the bot right after it posts the
// request card to the admin chat.
func (h *RequestHandler) SetOperatorMessage(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	var body operatorMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ExchangeUsecase.SetOperatorMessageID(c.Request.Context(), requestID, body.MessageID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requestdto.ToRequestOutput(updated))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	found, err := h.ExchangeUsecase.GetRequestByID(requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requestdto.ToRequestOutput(found))
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	var (
		requests []*domain.ExchangeRequest
		err      error
	)

	switch c.Query("scope") {
	case "active":
		requests, err = h.ExchangeUsecase.GetActiveRequests()
	case "confirmed":
		requests, err = h.ExchangeUsecase.GetConfirmedRequests()
	default:
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			if parsed, convErr := strconv.Atoi(raw); convErr == nil && parsed > 0 {
				limit = parsed
			}
		}
		requests, err = h.ExchangeUsecase.GetRecentRequests(limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	outputs := make([]*requestdto.RequestOutput, len(requests))
	for i, req := range requests {
		outputs[i] = requestdto.ToRequestOutput(req)
	}

	c.JSON(http.StatusOK, gin.H{"requests": outputs})
}

func (h *RequestHandler) notifyOperatorAction(c *gin.Context, req *domain.ExchangeRequest, action string) {
	owner, err := h.UserUsecase.GetUserByTelegramID(req.UserID)
	if err != nil {
		slog.Error("failed to resolve request owner", "request_id", req.ID, "error", err.Error())
		return
	}
	h.notifyOperator(c, telegram.UserActionNotice(req.ID, action, owner))
}

func (h *RequestHandler) notifyOperator(c *gin.Context, text string) {
	if err := h.Notifier.NotifyOperatorChannel(c.Request.Context(), text); err != nil {
		slog.Error("failed to notify operator channel", "error", err.Error())
	}
}

func parseRequestID(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return 0, false
	}
	return uint(parsed), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		// Expected under races: the request was already handled
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
