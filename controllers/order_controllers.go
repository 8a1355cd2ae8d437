package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/middlewares"
	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/services"
	"github.com/adiwidjaja/bistro-orders/utils"
)

type OrderController struct {
	DB       *gorm.DB
	checkout *services.CheckoutService
	orders   *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:       db,
		checkout: services.NewCheckoutService(db),
		orders:   services.NewOrderService(db),
	}
}

// Checkout places an order from the submitted cart. The request carries
// the cart lines with the unit prices the customer saw; they are validated
// through the cart value object before anything touches the store.
func (oc *OrderController) Checkout(c *gin.Context) {
	session := middlewares.SessionFromContext(c)

	var body struct {
		OrderType models.OrderType `json:"order_type" binding:"required"`
		Notes     string           `json:"notes"`
		Items     []struct {
			MenuItemID uint    `json:"menu_item_id" binding:"required"`
			UnitPrice  float64 `json:"unit_price"`
			Quantity   int     `json:"quantity" binding:"required"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := models.NewCart()
	for _, item := range body.Items {
		if err := cart.AddLine(item.MenuItemID, item.UnitPrice, item.Quantity); err != nil {
			respondDomainError(c, err)
			return
		}
	}

	orderID, err := oc.checkout.PlaceOrder(session, cart.Snapshot(), body.OrderType, body.Notes)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_id": orderID,
	})
}

// ListOrders selects the projection by role: customers get their own
// history, admins get every order.
func (oc *OrderController) ListOrders(c *gin.Context) {
	session := middlewares.SessionFromContext(c)

	var (
		orders []models.Order
		err    error
	)
	if session != nil && session.Admin {
		orders, err = oc.orders.ListAll(session)
	} else {
		orders, err = oc.orders.ListForCustomer(session)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	session := middlewares.SessionFromContext(c)

	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orders.GetByID(session, uint(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus transitions an order through the status lifecycle.
// The body carries the last-observed version so concurrent admin sessions
// cannot silently overwrite each other.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	session := middlewares.SessionFromContext(c)

	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Status  models.OrderStatus `json:"status" binding:"required"`
		Version uint               `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orders.UpdateStatus(session, uint(id), body.Status, body.Version)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
