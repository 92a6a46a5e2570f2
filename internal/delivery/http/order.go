package http

import (
	"errors"
	"net/http"
	"strings"

	"dtech-os/internal/models"
	"dtech-os/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuth):
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login
// @Summary Login
// @Description Authenticates against the upstream API and stores the session token
// @ID login
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} statusResponse
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginInput
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}

	if err := h.svc.Login(c.Request.Context(), in.Username, in.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{OK: true, Message: "autenticado"})
}

// Logout
// @Summary Logout
// @Description Discards the stored session token
// @ID logout
// @Produce json
// @Success 200 {object} statusResponse
// @Failure 500 {object} errorResponse
// @Router /api/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{OK: true, Message: "sessao encerrada"})
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Session
// @Summary Session
// @Description Reports whether a session token is stored
// @ID session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /api/session [get]
func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, sessionResponse{Authenticated: h.svc.Authenticated()})
}

// GetAllOrders
// @Summary GetAllOrders
// @Description Lists cached orders, optionally filtered by id, client or CPF
// @ID get-all-orders
// @Produce json
// @Param search query string false "substring filter"
// @Success 200 {object} getAllOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	list := h.svc.CachedOrders(c.Query("search"))
	c.JSON(http.StatusOK, getAllOrdersResponse{Data: list})
}

// RefreshOrders
// @Summary RefreshOrders
// @Description Refetches all orders from the upstream API into the cache
// @ID refresh-orders
// @Produce json
// @Success 200 {object} getAllOrdersResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/refresh [post]
func (h *Handler) RefreshOrders(c *gin.Context) {
	list, err := h.svc.RefreshOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, getAllOrdersResponse{Data: list})
}

type nextNumberResponse struct {
	ID string `json:"id"`
}

// NextOSNumber
// @Summary NextOSNumber
// @Description Returns the next free service order number for today
// @ID next-os-number
// @Produce json
// @Success 200 {object} nextNumberResponse
// @Router /api/orders/next-number [get]
func (h *Handler) NextOSNumber(c *gin.Context) {
	c.JSON(http.StatusOK, nextNumberResponse{ID: h.svc.NextOSNumber()})
}

// GetOrderByID
// @Summary GetOrderByID
// @Description Fetches a single cached order by its number
// @ID get-order-by-id
// @Produce json
// @Param id path string true "order number"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Router /api/order/{id} [get]
func (h *Handler) GetOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	order, err := h.svc.OrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// SaveOrder
// @Summary SaveOrder
// @Description Normalizes and saves an order through the upstream API
// @ID save-order
// @Accept json
// @Produce json
// @Param input body models.Form true "order form"
// @Success 200 {object} orders.Payload
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) SaveOrder(c *gin.Context) {
	var form models.Form
	if err := c.BindJSON(&form); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}

	payload, err := h.svc.SaveForm(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// DeleteOrder
// @Summary DeleteOrder
// @Description Deletes an order upstream and evicts it from the cache
// @ID delete-order
// @Produce json
// @Param id path string true "order number"
// @Success 200 {object} statusResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{OK: true, Message: "removida"})
}

type changeStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus
// @Summary ChangeStatus
// @Description Updates the status of an order, rolling back on upstream failure
// @ID change-status
// @Accept json
// @Produce json
// @Param id path string true "order number"
// @Param input body changeStatusInput true "new status"
// @Success 200 {object} statusResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{id}/status [patch]
func (h *Handler) ChangeStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	var in changeStatusInput
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}

	if err := h.svc.ChangeStatus(c.Request.Context(), id, in.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{OK: true, Message: "status atualizado"})
}

// ExportCSV
// @Summary ExportCSV
// @Description Downloads the cached orders as a semicolon separated CSV file
// @ID export-csv
// @Produce text/csv
// @Param search query string false "substring filter"
// @Success 200 {string} string "csv content"
// @Failure 404 {object} errorResponse
// @Router /api/export [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	filename, content, err := h.svc.ExportCSV(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
