package routes

import (
	"github.com/gin-gonic/gin"

	"estetica_pro/internal/adapter/http/handlers"
	"estetica_pro/internal/adapter/http/middleware"
)

const (
	PathClients    = "/clients"
	PathWorkOrders = "/work-orders"
	PathLoyalty    = "/loyalty"
	PathEmployees  = "/employees"
	PathAdmin      = "/admin"
)

// addShopRoutes registers the ERP surface. Intake and PIN login are public;
// everything else requires a staff token.
func addShopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	paymentHandler *handlers.PaymentHandler,
	loyaltyHandler *handlers.LoyaltyHandler,
	employeeHandler *handlers.EmployeeHandler,
	storeAdminHandler *handlers.StoreAdminHandler,
) {
	// Public: technician tablet intake and the PIN login that issues tokens.
	rg.POST(PathWorkOrders+"/intake", workOrderHandler.CreateIntake)
	rg.POST(PathEmployees+"/login", employeeHandler.LoginWithPIN)

	staff := rg.Group("", middleware.RequireStaff())

	clients := staff.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PATCH("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
		clients.POST("/:id/vehicles", clientHandler.AddVehicle)
		clients.GET("/:id/vehicles", clientHandler.ListVehicles)
		clients.DELETE("/:id/vehicles/:vehicle_id", clientHandler.RemoveVehicle)
		clients.POST("/engagement/refresh", clientHandler.RefreshEngagement)
	}

	orders := staff.Group(PathWorkOrders)
	{
		orders.POST("", workOrderHandler.Create)
		orders.GET("", workOrderHandler.List)
		orders.GET("/:id", workOrderHandler.GetByID)
		orders.PUT("/:id", workOrderHandler.Save)
		orders.DELETE("/:id", workOrderHandler.Delete)
		orders.PATCH("/:id/status", workOrderHandler.ChangeStatus)
		orders.POST("/:id/voucher", workOrderHandler.ApplyVoucher)
		orders.POST("/:id/payment", paymentHandler.Register)
		orders.DELETE("/:id/payment", paymentHandler.Undo)
		orders.GET("/:id/payments", paymentHandler.ListByWorkOrder)
	}

	loyalty := staff.Group(PathLoyalty)
	{
		loyalty.GET("/cards/:client_id", loyaltyHandler.GetCard)
		loyalty.GET("/cards/:client_id/history", loyaltyHandler.GetHistory)
		loyalty.GET("/rewards", loyaltyHandler.ListRewards)
		loyalty.POST("/redemptions", loyaltyHandler.RedeemReward)
		loyalty.GET("/vouchers/:code", loyaltyHandler.GetVoucher)
		loyalty.POST("/points", loyaltyHandler.AdjustPoints)
	}

	employees := staff.Group(PathEmployees)
	{
		employees.POST("", employeeHandler.Create)
		employees.GET("", employeeHandler.List)
		employees.GET("/:id", employeeHandler.GetByID)
		employees.PATCH("/:id", employeeHandler.Update)
		employees.PUT("/:id/pin", employeeHandler.SetPIN)
		employees.DELETE("/:id", employeeHandler.Deactivate)
	}

	admin := staff.Group(PathAdmin)
	{
		admin.POST("/store/reset", storeAdminHandler.Reset)
	}
}
