package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/controllers"
	"backend/repository"
	"backend/services"
)

// RegisterRoutes wires repositories, services and controllers around the
// injected DB handle and mounts every route.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	customerSvc := services.NewCustomerService(customerRepo, orderRepo)
	restaurantSvc := services.NewRestaurantService(restaurantRepo)
	menuItemSvc := services.NewMenuItemService(menuItemRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	reportSvc := services.NewReportService(reportRepo, customerRepo)

	// Controllers
	customerCtrl := controllers.NewCustomerController(customerSvc)
	restaurantCtrl := controllers.NewRestaurantController(restaurantSvc)
	menuItemCtrl := controllers.NewMenuItemController(menuItemSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Customers
	r.POST("/customers", customerCtrl.Create)
	r.GET("/customers/top", reportCtrl.TopCustomers)
	r.GET("/customers/:id", customerCtrl.Get)
	r.GET("/customers/:id/orders", customerCtrl.Orders)

	// Restaurants
	r.POST("/restaurants", restaurantCtrl.Create)
	r.GET("/restaurants/:id/menu", menuItemCtrl.ListByRestaurant)
	r.POST("/restaurants/:id/menu", menuItemCtrl.Create)
	r.GET("/restaurants/:id/revenue", reportCtrl.RestaurantRevenue)

	// Menu items
	r.GET("/menu/top-items", reportCtrl.TopMenuItems)
	r.PATCH("/menu/:id", menuItemCtrl.Update)

	// Orders
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
}
