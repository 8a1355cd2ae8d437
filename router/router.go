package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/controllers"
	"github.com/adiwidjaja/bistro-orders/middlewares"
	"github.com/adiwidjaja/bistro-orders/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Menu browsing needs no session
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu-items", menuCtrl.GetAllMenuItems)
	r.GET("/menu-items/:item_id", menuCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Checkout and role-scoped order history
		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.ListOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		menu := admin.Group("/")
		menu.Use(middlewares.RequireAdmin(models.ActionManageMenu))
		{
			menu.POST("/categories", categoryCtrl.CreateCategory)
			menu.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
			menu.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

			menu.POST("/menu-items", menuCtrl.CreateMenuItem)
			menu.PATCH("/menu-items/:item_id", menuCtrl.UpdateMenuItem)
			menu.DELETE("/menu-items/:item_id", menuCtrl.DeleteMenuItem)
		}

		orders := admin.Group("/")
		orders.Use(middlewares.RequireAdmin(models.ActionViewAllOrders))
		{
			orders.GET("/orders", orderCtrl.ListOrders)
			orders.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		}
	}

	return r
}
