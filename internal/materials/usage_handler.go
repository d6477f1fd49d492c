package materials

import (
	"errors"
	"fmt"
	"time"

	"buildpro-backend/internal/database"
	"buildpro-backend/internal/ledger"
	"buildpro-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordUsageRequest struct {
	MaterialID uint   `json:"material_id"`
	Quantity   *int   `json:"quantity"`
	ProjectID  *uint  `json:"project_id"`
	Notes      string `json:"notes"`
	RecordedBy string `json:"recorded_by"`
}

type UsageRecordResponse struct {
	ID           uint      `json:"id"`
	MaterialID   uint      `json:"material_id"`
	ProjectID    *uint     `json:"project_id"`
	Quantity     int       `json:"quantity"`
	UsageDate    time.Time `json:"usage_date"`
	Notes        string    `json:"notes"`
	RecordedBy   string    `json:"recorded_by"`
	MaterialName string    `json:"material_name"`
	ProjectName  *string   `json:"project_name"`
}

// POST /materials/usage
// Debits stock and appends the usage record in one transaction: either both
// writes land or neither does.
func RecordUsageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordUsageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.MaterialID == 0 || body.Quantity == nil || *body.Quantity == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "material_id and quantity are required")
		}
		if *body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be positive")
		}

		var updated models.Material
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var m models.Material
			if err := tx.First(&m, "id = ?", body.MaterialID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Material not found")
				}
				return err
			}

			prev := m.Stock
			if err := ledger.RecordUsage(&m, *body.Quantity); err != nil {
				var ins *ledger.InsufficientStockError
				if errors.As(err, &ins) {
					return fiber.NewError(fiber.StatusBadRequest, ins.Error())
				}
				return fiber.NewError(fiber.StatusBadRequest, "Quantity must be positive")
			}
			if err := UpdateStock(tx, &m, prev); err != nil {
				return err
			}

			usage := models.MaterialUsage{
				MaterialID: m.ID,
				ProjectID:  body.ProjectID,
				Quantity:   *body.Quantity,
				UsageDate:  time.Now(),
				Notes:      body.Notes,
				RecordedBy: body.RecordedBy,
			}
			if err := tx.Create(&usage).Error; err != nil {
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
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record usage")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("Usage recorded: %d %s used", *body.Quantity, updated.Name),
			"data":    updated,
		})
	}
}

// GET /materials/usage/:material_id
func UsageHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		materialID, err := c.ParamsInt("material_id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid material id")
		}

		var rows []UsageRecordResponse
		err = database.DB.
			Table("material_usage mu").
			Select("mu.id, mu.material_id, mu.project_id, mu.quantity, mu.usage_date, mu.notes, mu.recorded_by, m.name AS material_name, p.name AS project_name").
			Joins("JOIN materials m ON mu.material_id = m.id").
			Joins("LEFT JOIN projects p ON mu.project_id = p.id").
			Where("mu.material_id = ?", materialID).
			Order("mu.usage_date DESC, mu.id DESC").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load usage history")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"count":   len(rows),
			"data":    rows,
		})
	}
}
