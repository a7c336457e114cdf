package routes

import (
	"github.com/gin-gonic/gin"

	"shopfront_back_end/internal/handlers"
	"shopfront_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Catalogue (public)
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProductByID)

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", handlers.Register)
	auth.POST("/login", handlers.Login)
	auth.POST("/logout", middleware.AuthRequired(), handlers.Logout)

	// Panier — le websocket s'authentifie par query string, pas par header
	api.GET("/cart/ws", handlers.CartWebSocket)

	cart := api.Group("/cart", middleware.AuthRequired())
	cart.GET("", handlers.GetCart)
	cart.POST("/add", handlers.AddToCart)
	cart.PUT("/quantity", handlers.UpdateQuantity)
	cart.DELETE("/:productId", handlers.RemoveFromCart)
	cart.DELETE("", handlers.ClearCart)

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.POST("", handlers.PlaceOrder)
	orders.GET("", handlers.GetOrders)
	orders.GET("/all", middleware.RequireAdmin, handlers.GetAllOrders)
}
