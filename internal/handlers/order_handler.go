package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/middleware"
	"servio_backend/internal/services"
	"servio_backend/internal/services/dto"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id", h.PatchOrderStatus)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	counts := r.Group("/orders/business")
	counts.Use(middleware.OptionalAuthMiddleware())
	{
		counts.GET("/:id/in-progress-count", h.InProgressCount)
		counts.GET("/:id/completed-count", h.CompletedCount)
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	orders, err := h.orderService.ListFor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	created, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) PatchOrderStatus(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.orderService.PatchStatus(userID, isStaff, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	_, isStaff := h.Actor(c)

	if err := h.orderService.Delete(isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) InProgressCount(c *gin.Context) {
	count, err := h.orderService.CountInProgress(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *OrderHandler) CompletedCount(c *gin.Context) {
	count, err := h.orderService.CountCompleted(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}
