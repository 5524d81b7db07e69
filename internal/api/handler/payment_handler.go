package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

// PaymentHandler creates hosted checkout sessions.
type PaymentHandler struct {
	service ports.CheckoutService
}

func NewPaymentHandler(service ports.CheckoutService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateCheckoutSession handles POST /api/v1/payment/create-checkout-session.
//
// @Summary      Create a checkout session
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Items to purchase"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/payment/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request. items array is required.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request. items array is required.")
	}

	items := make([]ports.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.CheckoutItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	url, err := h.service.CreateSession(c.Request().Context(), items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkoutResponse{URL: url})
}
