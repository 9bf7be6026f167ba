package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/handlers"
	"github.com/ternurin/paletas-api/internal/middleware"
	"github.com/ternurin/paletas-api/internal/types"
)

func NewRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	paletas := r.Group("/paletas")
	{
		paletas.GET("", handlers.ListPaletas(gdb))
		paletas.GET("/:paleta_id", handlers.GetPaleta(gdb))

		admin := paletas.Group("", middleware.AuthMiddleware(gdb), middleware.AdminRequired())
		{
			admin.POST("", handlers.CreatePaleta(gdb))
			admin.PUT("/:paleta_id", handlers.UpdatePaleta(gdb))
			admin.DELETE("/:paleta_id", handlers.DeletePaleta(gdb))
		}
	}

	cart := r.Group("/cart")
	{
		cart.POST("/add", handlers.AddCartItem(gdb))
		cart.GET("/:user_id", handlers.GetCart(gdb))
		cart.PATCH("/decrease", handlers.DecreaseCartItem(gdb))
		cart.DELETE("/remove/:item_id", handlers.RemoveCartItem(gdb))
		cart.DELETE("/clear/:user_id", handlers.ClearCart(gdb))
	}

	orders := r.Group("/orders")
	{
		orders.POST("", handlers.CheckoutOrder(gdb))
		orders.GET("/all", handlers.ListOrders(gdb))
		orders.GET("/user/:user_id", handlers.ListUserOrders(gdb))
		orders.GET("/:order_id", handlers.GetOrder(gdb))
		orders.PATCH("/:order_id/attend", handlers.MarkOrderAttended(gdb))
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.Login(gdb))
		auth.GET("/me", middleware.AuthMiddleware(gdb), handlers.Me())
	}

	users := r.Group("/users")
	{
		users.POST("", handlers.CreateUser(gdb))

		authed := users.Group("", middleware.AuthMiddleware(gdb))
		{
			authed.GET("", handlers.ListUsers(gdb))
			authed.GET("/:user_id", handlers.GetUser(gdb))
			authed.PUT("/:user_id", handlers.UpdateUser(gdb))
			authed.DELETE("/:user_id", handlers.DeleteUser(gdb))
		}
	}

	return r
}
