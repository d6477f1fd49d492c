package materials

import (
	"errors"
	"fmt"
	"strings"

	"buildpro-backend/internal/database"
	"buildpro-backend/internal/ledger"
	"buildpro-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateMaterialRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Unit     string   `json:"unit"`
	Stock    *int     `json:"stock"`
	Price    *float64 `json:"price"`
	MinStock *int     `json:"min_stock"` // optional, defaults to 10
}

type RestockRequest struct {
	ID  uint `json:"id"`
	Qty *int `json:"qty"`
}

// GET /materials
// List plus the dashboard statistics block computed over all rows.
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Material
		if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list materials")
		}

		totalAssets := 0.0
		lowStockCount := 0
		for _, m := range items {
			totalAssets += float64(m.Stock) * m.Price
			if m.Status == string(ledger.StatusLowStock) || m.Stock < ledger.DefaultMinStock {
				lowStockCount++
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"count":   len(items),
			"statistics": fiber.Map{
				"totalSKU":      len(items),
				"totalAssets":   totalAssets,
				"lowStockCount": lowStockCount,
			},
			"data": items,
		})
	}
}

// GET /materials/:id
func GetMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid material id")
		}

		var m models.Material
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Material not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load material")
		}

		return c.JSON(fiber.Map{"success": true, "data": m})
	}
}

// POST /materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Stock == nil || body.Price == nil {
			return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
		}
		if err := ledger.ValidateIntake(body.Name, body.Category, body.Unit, *body.Stock, *body.Price); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		minStock := ledger.DefaultMinStock
		if body.MinStock != nil && *body.MinStock > 0 {
			minStock = *body.MinStock
		}

		m := models.Material{
			Name:     strings.TrimSpace(body.Name),
			Category: strings.TrimSpace(body.Category),
			Unit:     strings.TrimSpace(body.Unit),
			Stock:    *body.Stock,
			Price:    *body.Price,
			MinStock: minStock,
			Status:   string(ledger.DeriveStatus(*body.Stock, minStock)),
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create material")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Material created successfully",
			"data":    m,
		})
	}
}

// POST /materials/restock
func RestockMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RestockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ID == 0 || body.Qty == nil {
			return fiber.NewError(fiber.StatusBadRequest, "id and qty are required")
		}
		if *body.Qty < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be positive")
		}

		var updated models.Material
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var m models.Material
			if err := tx.First(&m, "id = ?", body.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Material not found")
				}
				return err
			}

			prev := m.Stock
			if err := ledger.Restock(&m, *body.Qty); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Quantity must be positive")
			}
			if err := UpdateStock(tx, &m, prev); err != nil {
				return err
			}

			updated = m
			return nil
		})
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not restock material")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("%d %s successfully restocked", *body.Qty, updated.Name),
			"data":    updated,
		})
	}
}

// UpdateStock persists the new stock and status of m, guarded by the stock
// value read at the start of the transaction. Zero affected rows means a
// concurrent writer won the race; the caller's transaction aborts and nothing
// is lost or double-applied.
func UpdateStock(tx *gorm.DB, m *models.Material, prevStock int) error {
	res := tx.Model(&models.Material{}).
		Where("id = ? AND stock = ?", m.ID, prevStock).
		Updates(map[string]interface{}{"stock": m.Stock, "status": m.Status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("material %d was modified concurrently", m.ID)
	}
	return nil
}
