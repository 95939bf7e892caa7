package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the engine operations for the bot layer. The bot
// process talks to this API; it owns keyboards and message editing, the
// engine owns state.
func NewRouter(requestHandler *RequestHandler, userHandler *UserHandler) *gin.Engine {
	router := gin.Default()

	requests := router.Group("/requests")
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.POST("/:id/confirm", requestHandler.ConfirmRequest)
		requests.POST("/:id/book", requestHandler.BookRequest)
		requests.POST("/:id/wait", requestHandler.MarkWaitingClient)
		requests.POST("/:id/clarify", requestHandler.ClarifyRequest)
		requests.POST("/:id/cancel", requestHandler.CancelRequest)
		requests.POST("/:id/complete", requestHandler.CompleteRequest)
		requests.PUT("/:id/operator-message", requestHandler.SetOperatorMessage)
	}

	users := router.Group("/users")
	{
		users.POST("", userHandler.FindOrCreateUser)
		users.GET("/:telegram_id/draft", userHandler.GetDraft)
		users.PUT("/:telegram_id/draft", userHandler.SaveDraft)
		users.DELETE("/:telegram_id/draft", userHandler.ClearDraft)
	}

	return router
}
