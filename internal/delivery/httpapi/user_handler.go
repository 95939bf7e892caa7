package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/user"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UserHandler struct {
	UserUsecase user.UserUsecase
}

func NewUserHandler(userUC user.UserUsecase) *UserHandler {
	return &UserHandler{UserUsecase: userUC}
}

type findOrCreateUserBody struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

func (h *UserHandler) FindOrCreateUser(c *gin.Context) {
	var body findOrCreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := h.UserUsecase.FindOrCreateUser(c.Request.Context(), &user.FindOrCreateUserInput{
		TelegramID: body.TelegramID,
		Username:   body.Username,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          found.ID,
		"telegram_id": found.TelegramID,
		"username":    found.Username,
		"first_name":  found.FirstName,
		"last_name":   found.LastName,
		"is_operator": found.IsOperator,
	})
}

type draftBody struct {
	State         string `json:"state" binding:"required"`
	OperationType string `json:"operation_type"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	RespondingTo  uint   `json:"responding_to"`
}

func (h *UserHandler) SaveDraft(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}

	var body draftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := &domain.Draft{
		TelegramID:    telegramID,
		State:         domain.DraftState(body.State),
		OperationType: domain.OperationType(body.OperationType),
		Currency:      domain.Currency(body.Currency),
		RespondingTo:  body.RespondingTo,
	}
	if body.Amount != "" {
		amount, err := decimal.NewFromString(body.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}
		draft.Amount = amount
	}

	if err := h.UserUsecase.SaveDraft(c.Request.Context(), draft); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *UserHandler) GetDraft(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}

	draft, err := h.UserUsecase.GetDraft(c.Request.Context(), telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *UserHandler) ClearDraft(c *gin.Context) {
	telegramID, ok := parseTelegramID(c)
	if !ok {
		return
	}

	if err := h.UserUsecase.ClearDraft(c.Request.Context(), telegramID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTelegramID(c *gin.Context) (int64, bool) {
	parsed, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return 0, false
	}
	return parsed, true
}
