package purchaseorders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"buildpro-backend/internal/database"
	"buildpro-backend/internal/ledger"
	"buildpro-backend/internal/materials"
	"buildpro-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreatePurchaseOrderRequest struct {
	MaterialID       uint     `json:"material_id"`
	VendorID         *uint    `json:"vendor_id"`
	Quantity         *int     `json:"quantity"`
	AgreedPrice      *float64 `json:"agreed_price"`
	OrderDate        string   `json:"order_date"`        // "2006-01-02"
	ExpectedDelivery string   `json:"expected_delivery"` // optional
	Notes            string   `json:"notes"`
	CreatedBy        string   `json:"created_by"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type PurchaseOrderResponse struct {
	ID               uint       `json:"id"`
	MaterialID       uint       `json:"material_id"`
	VendorID         *uint      `json:"vendor_id"`
	Quantity         int        `json:"quantity"`
	AgreedPrice      float64    `json:"agreed_price"`
	Status           string     `json:"status"`
	OrderDate        time.Time  `json:"order_date"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	ActualDelivery   *time.Time `json:"actual_delivery"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"created_by"`
	MaterialName     string     `json:"material_name"`
	VendorName       *string    `json:"vendor_name"`
}

const poJoinSelect = "po.id, po.material_id, po.vendor_id, po.quantity, po.agreed_price, po.status, po.order_date, po.expected_delivery, po.actual_delivery, po.notes, po.created_by, m.name AS material_name, v.name AS vendor_name"

// GET /purchase-orders
func ListPurchaseOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []PurchaseOrderResponse
		err := database.DB.
			Table("purchase_orders po").
			Select(poJoinSelect).
			Joins("JOIN materials m ON po.material_id = m.id").
			Joins("LEFT JOIN vendors v ON po.vendor_id = v.id").
			Order("po.order_date DESC, po.id DESC").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list purchase orders")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"count":   len(rows),
			"data":    rows,
		})
	}
}

// GET /purchase-orders/:id
func GetPurchaseOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase order id")
		}

		var rows []PurchaseOrderResponse
		err = database.DB.
			Table("purchase_orders po").
			Select(poJoinSelect).
			Joins("JOIN materials m ON po.material_id = m.id").
			Joins("LEFT JOIN vendors v ON po.vendor_id = v.id").
			Where("po.id = ?", id).
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load purchase order")
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Purchase order not found")
		}

		return c.JSON(fiber.Map{"success": true, "data": rows[0]})
	}
}

// POST /purchase-orders
func CreatePurchaseOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.MaterialID == 0 || body.Quantity == nil || *body.Quantity == 0 ||
			body.AgreedPrice == nil || strings.TrimSpace(body.OrderDate) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "material_id, quantity, agreed_price, and order_date are required")
		}
		if *body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be positive")
		}
		if *body.AgreedPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Agreed price must not be negative")
		}

		orderDate, err := time.Parse("2006-01-02", body.OrderDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "order_date must be formatted as YYYY-MM-DD")
		}

		var expected *time.Time
		if strings.TrimSpace(body.ExpectedDelivery) != "" {
			d, err := time.Parse("2006-01-02", body.ExpectedDelivery)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "expected_delivery must be formatted as YYYY-MM-DD")
			}
			expected = &d
		}

		var material models.Material
		if err := database.DB.First(&material, "id = ?", body.MaterialID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Material not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load material")
		}

		po := models.PurchaseOrder{
			MaterialID:       body.MaterialID,
			VendorID:         body.VendorID,
			Quantity:         *body.Quantity,
			AgreedPrice:      *body.AgreedPrice,
			Status:           models.PurchaseOrderPending,
			OrderDate:        orderDate,
			ExpectedDelivery: expected,
			Notes:            body.Notes,
			CreatedBy:        body.CreatedBy,
		}

		if err := database.DB.Create(&po).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create purchase order")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Purchase order created successfully",
			"data":    po,
		})
	}
}

// PUT /purchase-orders/:id/receive
// Flips the order to Delivered and credits the material's stock in one
// transaction. The status guard in the conditional update makes the credit
// exactly-once even under concurrent receives.
func ReceivePurchaseOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase order id")
		}

		var updated models.PurchaseOrder
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var po models.PurchaseOrder
			if err := tx.First(&po, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Purchase order not found")
				}
				return err
			}
			if po.Status == models.PurchaseOrderDelivered {
				return fiber.NewError(fiber.StatusBadRequest, "Purchase order already delivered")
			}

			now := time.Now()
			res := tx.Model(&models.PurchaseOrder{}).
				Where("id = ? AND status <> ?", po.ID, models.PurchaseOrderDelivered).
				Updates(map[string]interface{}{
					"status":          models.PurchaseOrderDelivered,
					"actual_delivery": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("purchase order %d was received concurrently", po.ID)
			}

			var m models.Material
			if err := tx.First(&m, "id = ?", po.MaterialID).Error; err != nil {
				return err
			}
			prev := m.Stock
			ledger.Receive(&m, po.Quantity)
			if err := materials.UpdateStock(tx, &m, prev); err != nil {
				return err
			}

			po.Status = models.PurchaseOrderDelivered
			po.ActualDelivery = &now
			updated = po
			return nil
		})
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not receive purchase order")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Purchase order received and stock updated",
			"data":    updated,
		})
	}
}

// PUT /purchase-orders/:id/status
// Free-form status overwrite for operator-managed states (Cancelled, On
// Hold, ...). Receiving is the only transition with side effects and stays on
// its own endpoint.
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid purchase order id")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(body.Status) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "status is required")
		}

		var po models.PurchaseOrder
		if err := database.DB.First(&po, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Purchase order not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load purchase order")
		}

		if err := database.DB.Model(&po).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update status")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("Status updated to %s", body.Status),
		})
	}
}
