package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

// PlaceOrder converts a cart snapshot into a persisted order plus its
// items. The order and every item are written in one transaction, so a
// partially created order can never remain. Each item's price_at_order is
// the unit price captured in the cart, not a re-read of the live menu
// price: what the customer agreed to is what gets charged, regardless of
// menu edits between add-to-cart and submit.
//
// Validation and auth failures happen before any store call. On failure
// the caller's cart is untouched so the user can simply retry.
func (s *CheckoutService) PlaceOrder(session *models.Session, snapshot models.CartSnapshot, orderType models.OrderType, notes string) (uint, error) {
	if session == nil {
		return 0, models.ErrAuthRequired
	}
	if snapshot.Empty() {
		return 0, &models.ValidationError{Message: "cart is empty"}
	}
	if !orderType.Valid() {
		return 0, &models.ValidationError{Message: fmt.Sprintf("unknown order type %q", orderType)}
	}
	for _, line := range snapshot.Lines {
		if line.Quantity < 1 {
			return 0, &models.ValidationError{Message: fmt.Sprintf("menu item %d has quantity %d", line.MenuItemID, line.Quantity)}
		}
		if line.UnitPrice < 0 {
			return 0, &models.ValidationError{Message: fmt.Sprintf("menu item %d has a negative unit price", line.MenuItemID)}
		}
	}

	var total float64
	for _, line := range snapshot.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	now := time.Now()
	order := models.Order{
		UserID:     session.UserID,
		Status:     models.StatusPending,
		OrderType:  orderType,
		TotalPrice: total,
		Notes:      notes,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range snapshot.Lines {
			item := models.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   line.MenuItemID,
				Quantity:     line.Quantity,
				PriceAtOrder: line.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("checkout failed for user %d: %v", session.UserID, err)
		return 0, &models.OrderCreationFailed{Err: err}
	}

	utils.InfoLogger.Printf("order %d created for user %d, total %.2f", order.ID, session.UserID, total)
	return order.ID, nil
}
