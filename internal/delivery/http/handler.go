package http

import (
	"dtech-os/internal/models"
	"dtech-os/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "dtech-os/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc service.Orders
}

func NewHandler(s service.Orders) *Handler {
	return &Handler{svc: s}
}

type getAllOrdersResponse struct {
	Data []models.Order `json:"data"`
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/session", h.Session)

		api.GET("/orders", h.GetAllOrders)
		api.POST("/orders", h.SaveOrder)
		api.POST("/orders/refresh", h.RefreshOrders)
		api.GET("/orders/next-number", h.NextOSNumber)
		api.GET("/order/:id", h.GetOrderByID)
		api.DELETE("/order/:id", h.DeleteOrder)
		api.PATCH("/order/:id/status", h.ChangeStatus)

		api.GET("/order/:id/print", h.PrintOrder)
		api.POST("/print/os", h.PrintForm)
		api.POST("/print/estimate", h.PrintEstimate)
		api.POST("/print/close", h.PrintCloseOrder)
		api.POST("/print/warranty", h.PrintWarranty)
		api.POST("/print/purchase", h.PrintPurchase)

		api.GET("/export", h.ExportCSV)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
