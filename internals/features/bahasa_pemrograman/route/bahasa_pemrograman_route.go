// internals/features/bahasa_pemrograman/route/bahasa_pemrograman_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/bahasa_pemrograman/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func BahasaPemrogramanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBahasaPemrogramanController(db)

	grp := api.Group("/bahasa-pemrograman")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Put("/:id", auth.AuthMiddleware(), ctrl.Update)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
