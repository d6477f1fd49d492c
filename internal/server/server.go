package server

import (
	"log"
	"strings"

	"buildpro-backend/internal/config"
	"buildpro-backend/internal/materials"
	"buildpro-backend/internal/metrics"
	"buildpro-backend/internal/purchaseorders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New assembles the fiber app: middleware, error rendering and every route.
// Kept separate from main so handler tests can run against the real app.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Material Service",
			"status":  "Active",
		})
	})
	app.Get("/metrics", metrics.Handler())

	app.Get("/materials", materials.ListMaterialsHandler())
	app.Post("/materials", materials.CreateMaterialHandler())
	app.Get("/materials/export", materials.ExportMaterialsHandler())
	app.Post("/materials/restock", materials.RestockMaterialHandler())
	app.Post("/materials/usage", materials.RecordUsageHandler())
	app.Get("/materials/usage/:material_id", materials.UsageHistoryHandler())
	app.Get("/materials/:name/compare-prices", materials.ComparePricesHandler())
	app.Get("/materials/:id", materials.GetMaterialHandler())

	app.Get("/purchase-orders", purchaseorders.ListPurchaseOrdersHandler())
	app.Get("/purchase-orders/:id", purchaseorders.GetPurchaseOrderHandler())
	app.Post("/purchase-orders", purchaseorders.CreatePurchaseOrderHandler())
	app.Put("/purchase-orders/:id/receive", purchaseorders.ReceivePurchaseOrderHandler())
	app.Put("/purchase-orders/:id/status", purchaseorders.UpdateStatusHandler())

	return app
}
