// internals/features/vendor/route/vendor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/vendors/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func VendorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVendorController(db)

	grp := api.Group("/vendor")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Put("/:id", auth.AuthMiddleware(), ctrl.Update)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
