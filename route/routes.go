package route

import (
	"vilcos/auth"
	"vilcos/config"
	"vilcos/controller"
	"vilcos/utils"

	"github.com/gin-gonic/gin"
)

// Register wires every HTTP surface onto the router.
func Register(router *gin.Engine, ctrl *controller.Controller, authHandler *auth.Handler, cfg config.Config) {
	session := utils.SessionMiddleware(cfg.SecretKey, cfg.SessionCookieName)

	api := router.Group("/api")
	{
		api.GET("/health", ctrl.Health)
		api.GET("/tables", ctrl.ListTables)
		api.GET("/time-slots", ctrl.ListTimeSlots)
		api.GET("/menu-items", ctrl.ListMenuItems)
		api.POST("/reserve", ctrl.Reserve)
		api.POST("/create-checkout-session", ctrl.CreateCheckoutSession)
	}

	booking := router.Group("/booking")
	{
		booking.GET("/success", ctrl.CheckoutSuccess)
		booking.GET("/cancel", ctrl.CheckoutCancel)
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/signin", authHandler.Signin)
		authGroup.POST("/signout", authHandler.Signout)
		authGroup.GET("/signout", authHandler.Signout)
		authGroup.GET("/me", session, authHandler.Me)
	}

	admin := router.Group("/admin")
	admin.Use(session, utils.AdminRequired())
	{
		admin.GET("/reservations", ctrl.ListReservations)
		admin.POST("/reservations/:id/cancel", ctrl.CancelReservation)
		admin.POST("/reservations/:id/complete", ctrl.CompleteReservation)
		admin.POST("/menu-items", ctrl.AddMenuItem)
		admin.PUT("/menu-items/:id", ctrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", ctrl.DeactivateMenuItem)
		admin.POST("/menu-items/import", ctrl.ImportMenuItems)
	}
}
