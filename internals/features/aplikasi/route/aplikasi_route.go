// internals/features/aplikasi/route/aplikasi_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/aplikasi/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func AplikasiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAplikasiController(db)

	grp := api.Group("/aplikasi")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Put("/:id", auth.AuthMiddleware(), ctrl.Update)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
