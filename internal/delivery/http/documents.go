package http

import (
	"net/http"
	"strings"

	"dtech-os/internal/models"
	"dtech-os/internal/printdoc"

	"github.com/gin-gonic/gin"
)

func renderHTML(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PrintOrder
// @Summary PrintOrder
// @Description Renders a cached order as a printable HTML document
// @ID print-order
// @Produce html
// @Param id path string true "order number"
// @Param mode query string false "a4, thermal58 or thermal38" default(a4)
// @Success 200 {string} string "html document"
// @Failure 400,404 {object} errorResponse
// @Router /api/order/{id}/print [get]
func (h *Handler) PrintOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing id")
		return
	}

	html, err := h.svc.PrintOrder(id, c.DefaultQuery("mode", printdoc.ModeA4))
	if err != nil {
		respondError(c, err)
		return
	}

	renderHTML(c, html)
}

type printFormInput struct {
	Mode string      `json:"mode"`
	Form models.Form `json:"form"`
}

// PrintForm
// @Summary PrintForm
// @Description Renders an unsaved order form as a printable HTML document
// @ID print-form
// @Accept json
// @Produce html
// @Param input body printFormInput true "form and print mode"
// @Success 200 {string} string "html document"
// @Failure 400 {object} errorResponse
// @Router /api/print/os [post]
func (h *Handler) PrintForm(c *gin.Context) {
	var in printFormInput
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	renderHTML(c, h.svc.PrintForm(in.Form, in.Mode))
}

// PrintEstimate
// @Summary PrintEstimate
// @Description Renders a repair estimate coupon
// @ID print-estimate
// @Accept json
// @Produce html
// @Param input body printdoc.Estimate true "estimate data"
// @Success 200 {string} string "html document"
// @Failure 400 {object} errorResponse
// @Router /api/print/estimate [post]
func (h *Handler) PrintEstimate(c *gin.Context) {
	var in printdoc.Estimate
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	renderHTML(c, h.svc.PrintEstimate(in))
}

// PrintCloseOrder
// @Summary PrintCloseOrder
// @Description Renders a service completion coupon
// @ID print-close-order
// @Accept json
// @Produce html
// @Param input body printdoc.CloseOrder true "completion data"
// @Success 200 {string} string "html document"
// @Failure 400 {object} errorResponse
// @Router /api/print/close [post]
func (h *Handler) PrintCloseOrder(c *gin.Context) {
	var in printdoc.CloseOrder
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	renderHTML(c, h.svc.PrintCloseOrder(in))
}

// PrintWarranty
// @Summary PrintWarranty
// @Description Renders a product sale warranty coupon
// @ID print-warranty
// @Accept json
// @Produce html
// @Param input body printdoc.Warranty true "sale data"
// @Success 200 {string} string "html document"
// @Failure 400 {object} errorResponse
// @Router /api/print/warranty [post]
func (h *Handler) PrintWarranty(c *gin.Context) {
	var in printdoc.Warranty
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	renderHTML(c, h.svc.PrintWarranty(in))
}

type printPurchaseInput struct {
	Mode     string            `json:"mode"`
	Purchase printdoc.Purchase `json:"purchase"`
}

// PrintPurchase
// @Summary PrintPurchase
// @Description Renders a used device purchase term
// @ID print-purchase
// @Accept json
// @Produce html
// @Param input body printPurchaseInput true "purchase data and print mode"
// @Success 200 {string} string "html document"
// @Failure 400 {object} errorResponse
// @Router /api/print/purchase [post]
func (h *Handler) PrintPurchase(c *gin.Context) {
	var in printPurchaseInput
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid input body")
		return
	}
	renderHTML(c, h.svc.PrintPurchase(in.Purchase, in.Mode))
}
