package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	msgSvc := services.NewMessageService(db, msgRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	userCtrl := controllers.NewUserController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	msgCtrl := controllers.NewMessageController(msgSvc)

	api := r.Group("/api", middlewares.Identity(cfg))

	// Auth
	api.POST("/login", authCtrl.Login)
	api.POST("/logout", authCtrl.Logout)
	api.POST("/register", authCtrl.Register)
	api.GET("/check-auth", authCtrl.CheckAuth)

	// Catalog (public)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/menu", menuCtrl.List)

	// Catalog (authenticated)
	api.POST("/restaurants", middlewares.RequireAuth(), restCtrl.Create)
	api.POST("/restaurants/:id/menu", middlewares.RequireAuth(), menuCtrl.Add)
	api.PUT("/restaurants/:id/menu/:itemId", middlewares.RequireAuth(), menuCtrl.Update)

	// Cart
	cart := api.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("/clear", cartCtrl.Clear)
		cart.PUT("/:id", cartCtrl.Update)
		cart.DELETE("/:id", cartCtrl.Remove)
	}

	// Orders
	orders := api.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/history", orderCtrl.History)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
	}

	// Messages
	messages := api.Group("/messages", middlewares.RequireAuth())
	{
		messages.GET("/:orderId", msgCtrl.List)
		messages.POST("/:orderId", msgCtrl.Send)
		messages.PUT("/:orderId/read", msgCtrl.MarkRead)
	}

	// Profile
	user := api.Group("/user", middlewares.RequireAuth())
	{
		user.GET("/profile", userCtrl.Profile)
		user.PUT("/profile", userCtrl.UpdateProfile)
	}
}
