package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// ListForCustomer returns only the session user's orders, newest first,
// each joined with its items and their menu items.
func (s *OrderService) ListForCustomer(session *models.Session) ([]models.Order, error) {
	if session == nil {
		return nil, models.ErrAuthRequired
	}

	var orders []models.Order
	if err := s.DB.
		Where("user_id = ?", session.UserID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, &models.PersistenceError{Op: "list orders", Err: err}
	}

	if err := s.loadItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order across all users, newest first. Admin only.
func (s *OrderService) ListAll(session *models.Session) ([]models.Order, error) {
	if err := models.Authorize(session, models.ActionViewAllOrders); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.DB.
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, &models.PersistenceError{Op: "list orders", Err: err}
	}

	if err := s.loadItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns one order with its items. Customers can only read their
// own orders; admins can read any.
func (s *OrderService) GetByID(session *models.Session, orderID uint) (*models.Order, error) {
	if session == nil {
		return nil, models.ErrAuthRequired
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, &models.PersistenceError{Op: "load order", Err: err}
	}

	if order.UserID != session.UserID && !session.Admin {
		return nil, models.ErrForbidden
	}

	orders := []models.Order{order}
	if err := s.loadItems(orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// loadItems joins the items (and their menu items) onto each order.
// A failed join on any single order fails the whole projection; callers
// never see a partial result set.
func (s *OrderService) loadItems(orders []models.Order) error {
	for i := range orders {
		var items []models.OrderItem
		if err := s.DB.
			Preload("MenuItem").
			Where("order_id = ?", orders[i].ID).
			Find(&items).Error; err != nil {
			return &models.PartialLoadError{OrderID: orders[i].ID, Err: err}
		}
		orders[i].OrderItems = items
	}
	return nil
}

// UpdateStatus moves an order to the requested status. The transition
// table decides legality; completed and cancelled are terminal. The
// lastSeenVersion is the concurrency token: the UPDATE only matches if
// nobody else changed the order since the caller read it, otherwise the
// caller gets a ConflictError instead of a silent last-write-wins.
// Only status, updated_at and version are ever written; items and the
// total are frozen at checkout.
func (s *OrderService) UpdateStatus(session *models.Session, orderID uint, next models.OrderStatus, lastSeenVersion uint) (*models.Order, error) {
	if err := models.Authorize(session, models.ActionUpdateOrderStatus); err != nil {
		return nil, err
	}
	if !next.Valid() {
		return nil, &models.ValidationError{Message: fmt.Sprintf("unknown status %q", next)}
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, &models.PersistenceError{Op: "load order", Err: err}
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, &models.TransitionError{From: order.Status, To: next}
	}

	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND version = ?", orderID, lastSeenVersion).
		Updates(map[string]interface{}{
			"status":     next,
			"updated_at": time.Now(),
			"version":    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, &models.PersistenceError{Op: "update order status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &models.ConflictError{OrderID: orderID}
	}

	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, &models.PersistenceError{Op: "reload order", Err: err}
	}

	utils.InfoLogger.Printf("order %d status -> %s (by user %d)", orderID, next, session.UserID)
	return &order, nil
}
