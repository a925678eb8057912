package routes

import (
	"pixgate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProviders = "/providers/:provider"
	PathPayments  = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	// default provider
	rg.POST("/create-payment", paymentHandler.CreatePayment)
	rg.GET("/payment-status/:id", paymentHandler.GetPaymentStatus)

	providers := rg.Group(PathProviders)
	{
		providers.POST("/create-payment", paymentHandler.CreatePayment)
		providers.GET("/payment-status/:id", paymentHandler.GetPaymentStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id/stream", paymentHandler.StreamPaymentStatus)
	}
}

func addVehicleRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	rg.GET("/vehicle-info/:plate", vehicleHandler.GetVehicleInfo)
}

func addPingRoutes(r gin.IRoutes) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
