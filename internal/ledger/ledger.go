// Package ledger holds the stock-state transition rules for materials. All
// functions are pure: they validate and mutate an in-memory material record,
// persistence is the caller's job.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"buildpro-backend/internal/models"
)

type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// DefaultMinStock is used when a material has no threshold of its own.
const DefaultMinStock = 10

// ErrNegativeQuantity rejects negative deltas before any state is touched.
var ErrNegativeQuantity = errors.New("quantity must not be negative")

// InsufficientStockError: a usage request asked for more than is on hand.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
}

// DeriveStatus maps a stock level to its status. One rule for every call
// site: zero is out of stock, below the threshold is low, otherwise in stock.
func DeriveStatus(stock, minStock int) Status {
	if minStock <= 0 {
		minStock = DefaultMinStock
	}
	switch {
	case stock == 0:
		return StatusOutOfStock
	case stock < minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ValidateIntake checks the fields of a new material before it is created.
func ValidateIntake(name, category, unit string, stock int, price float64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" || strings.TrimSpace(unit) == "" {
		return errors.New("name, category and unit are required")
	}
	if stock < 0 {
		return errors.New("stock must not be negative")
	}
	if price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// Restock credits qty units and re-derives the status.
func Restock(m *models.Material, qty int) error {
	if qty < 0 {
		return ErrNegativeQuantity
	}
	m.Stock += qty
	m.Status = string(DeriveStatus(m.Stock, m.MinStock))
	return nil
}

// RecordUsage debits qty units. The debit is refused outright when it would
// take the stock below zero.
func RecordUsage(m *models.Material, qty int) error {
	if qty < 0 {
		return ErrNegativeQuantity
	}
	if qty > m.Stock {
		return &InsufficientStockError{Available: m.Stock}
	}
	m.Stock -= qty
	m.Status = string(DeriveStatus(m.Stock, m.MinStock))
	return nil
}

// Receive credits a delivered purchase-order quantity. Idempotency of the
// credit is enforced by the purchase order's status, not here.
func Receive(m *models.Material, qty int) {
	m.Stock += qty
	m.Status = string(DeriveStatus(m.Stock, m.MinStock))
}
