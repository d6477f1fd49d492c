package materials

import (
	"net/url"
	"time"

	"buildpro-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type VendorOfferResponse struct {
	ID               uint      `json:"id"`
	VendorID         uint      `json:"vendor_id"`
	MaterialName     string    `json:"material_name"`
	Price            float64   `json:"price"`
	Unit             string    `json:"unit"`
	StockAvailable   int       `json:"stock_available"`
	MinOrderQuantity int       `json:"min_order_quantity"`
	DeliveryTimeDays int       `json:"delivery_time_days"`
	VendorName       string    `json:"vendor_name"`
	VendorRating     float64   `json:"vendor_rating"`
	CreatedAt        time.Time `json:"created_at"`
}

// GET /materials/:name/compare-prices
// Substring match across vendor offers, cheapest first. LOWER on both sides
// keeps the match case-insensitive on Postgres, as it was on the MySQL
// deployment this service replaced.
func ComparePricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if un, err := url.PathUnescape(name); err == nil {
			name = un
		}

		var rows []VendorOfferResponse
		err := database.DB.
			Table("vendor_materials vm").
			Select("vm.id, vm.vendor_id, vm.material_name, vm.price, vm.unit, vm.stock_available, vm.min_order_quantity, vm.delivery_time_days, vm.created_at, v.name AS vendor_name, v.rating AS vendor_rating").
			Joins("JOIN vendors v ON vm.vendor_id = v.id").
			Where("LOWER(vm.material_name) LIKE LOWER(?)", "%"+name+"%").
			Order("vm.price ASC").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compare prices")
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"count":        len(rows),
			"data":         rows,
			"searched_for": name,
		})
	}
}
