package materials

import (
	"fmt"
	"time"

	"buildpro-backend/internal/database"
	"buildpro-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /materials/export
// Current inventory as an xlsx download for offline reporting.
func ExportMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Material
		if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list materials")
		}

		f := excelize.NewFile()
		defer func() { _ = f.Close() }()

		sheet := f.GetSheetName(f.GetActiveSheetIndex())

		header := []interface{}{
			"id", "name", "category", "unit", "stock", "min_stock", "price", "asset_value", "status",
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}

		row := 2
		for _, m := range items {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
			}
			values := []interface{}{
				m.ID, m.Name, m.Category, m.Unit, m.Stock, m.MinStock, m.Price,
				float64(m.Stock) * m.Price, m.Status,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
			}
			row++
		}

		filename := fmt.Sprintf("materials-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

		if err := f.Write(c.Response().BodyWriter()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write report")
		}
		return nil
	}
}
