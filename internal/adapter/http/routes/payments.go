package routes

import (
	"clubpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentSessions = "/payment-sessions"
	PathPurchases       = "/purchases"
	PathClubs           = "/clubs"
)

func addPaymentRoutes(rg *gin.RouterGroup, sessionHandler *handlers.PaymentSessionHandler, purchaseHandler *handlers.PurchaseHandler) {
	paymentSessions := rg.Group(PathPaymentSessions)
	{
		paymentSessions.POST("", sessionHandler.CreatePaymentSession)
		paymentSessions.GET("/:session_id", sessionHandler.GetPaymentSession)
		paymentSessions.POST("/:session_id/events", sessionHandler.PostSessionEvent)
	}

	purchases := rg.Group(PathPurchases)
	{
		purchases.POST("", purchaseHandler.CreatePurchase)
		purchases.GET("/:session_id", purchaseHandler.GetPurchaseBySessionID)
	}
}

func addClubRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, purchaseHandler *handlers.PurchaseHandler) {
	clubs := rg.Group(PathClubs)
	{
		clubs.GET("/:club_id/offerings", catalogHandler.ListOfferings)
		clubs.GET("/:club_id/purchases", purchaseHandler.ListPurchasesByClub)
	}
}
